package repo

import (
	"strings"

	"rorepo/utils"
)

// requiredMarker is the legacy naming convention for required fields: a
// declared name "__start" normalizes to the required field "start".
const requiredMarker = "__"

// SetterFunc validates or transforms a raw input value during construction.
// Returning an error aborts construction.
type SetterFunc func(value any) (any, error)

// GetterFunc transforms a stored value on every read through Get, ToMap,
// MarshalJSON and All.
type GetterFunc func(value any) any

// Field describes one declared data field of a repository type.
type Field struct {
	// Name is the field identifier, e.g. "startDate". Input maps may also
	// address it in kebab form ("start-date").
	Name string

	// Required fields must be non-empty once construction finishes.
	Required bool

	// Hidden fields are settable and defaultable but never readable through
	// the public surface.
	Hidden bool

	// Default is the static fallback applied to an empty field. A computed
	// default from Schema.WithDefaults wins over it.
	Default any

	Setter SetterFunc
	Getter GetterFunc
}

// Schema is the ordered static field table a concrete repository type
// declares once. It replaces runtime property introspection: the field set is
// fixed and known ahead of construction.
type Schema struct {
	fields     []Field
	index      map[string]int
	duplicates []string
	defaults   func() map[string]any
}

// NewSchema builds a schema from field descriptors in declaration order.
// Legacy names carrying the required marker are normalized: "__bar" becomes
// the required field "bar". When two descriptors normalize to the same name
// the later one replaces the earlier in place; the collision is remembered
// and rejected at construction unless AllowDuplicates is set.
func NewSchema(fields ...Field) *Schema {
	s := &Schema{index: make(map[string]int, len(fields))}

	names := make([]string, 0, len(fields))

	for _, f := range fields {
		if rest, ok := strings.CutPrefix(f.Name, requiredMarker); ok && rest != "" {
			f.Name = rest
			f.Required = true
		}

		names = append(names, f.Name)

		if i, ok := s.index[f.Name]; ok {
			s.fields[i] = f
			continue
		}

		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	s.duplicates = utils.Dupes(names)

	return s
}

// WithDefaults registers the computed-defaults hook. The returned mapping is
// consulted for every empty field after assignment and takes precedence over
// static Field.Default values.
func (s *Schema) WithDefaults(fn func() map[string]any) *Schema {
	s.defaults = fn
	return s
}

// WithSetter attaches a setter hook to a declared field. Unknown names are
// ignored so hook wiring can be written unconditionally.
func (s *Schema) WithSetter(name string, fn SetterFunc) *Schema {
	if i, ok := s.index[name]; ok {
		s.fields[i].Setter = fn
	}

	return s
}

// WithGetter attaches a getter hook to a declared field.
func (s *Schema) WithGetter(name string, fn GetterFunc) *Schema {
	if i, ok := s.index[name]; ok {
		s.fields[i].Getter = fn
	}

	return s
}

// Names returns the declared field names in order, hidden ones included.
func (s *Schema) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}

	return names
}

// lookup resolves an input key to a declared field: literal name first, then
// the kebab-to-camel conversion of the key.
func (s *Schema) lookup(key string) (Field, bool) {
	if i, ok := s.index[key]; ok {
		return s.fields[i], true
	}

	if i, ok := s.index[KebabToCamel(key)]; ok {
		return s.fields[i], true
	}

	return Field{}, false
}
