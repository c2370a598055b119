// Package schema builds repo field tables from declarative sources.
//
// Two sources are supported:
//   - FromStruct derives a schema from a Go struct type via `repo` tags
//   - LoadFile / Parse read a YAML schema document
//
// Both produce an ordered *repo.Schema; setter and getter hooks are attached
// afterwards with WithSetter / WithGetter since functions cannot be declared
// in tags or YAML.
package schema
