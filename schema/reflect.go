package schema

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"rorepo/repo"
)

// FromStruct derives a schema from T's exported fields in declaration order.
//
// The `repo` tag renames a field and carries the "required" and "hidden"
// options; "-" skips the field entirely. A `default` tag declares a static
// string default. Unexported fields are ignored, like encoding/json does.
//
//	type Event struct {
//		Bar  string `repo:"bar,required"`
//		Baz  string `repo:"baz,hidden"`
//		Note string `repo:"-"`
//		Kind string `default:"generic"`
//	}
func FromStruct[T any]() (*repo.Schema, error) {
	return FromStructType(reflect.TypeFor[T]())
}

// FromStructType is the non-generic form of FromStruct.
func FromStructType(t reflect.Type) (*repo.Schema, error) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema: %v is not a struct type", t)
	}

	var fields []repo.Field

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		name, opts := parseTag(sf.Tag.Get("repo"))
		if name == "-" {
			continue
		}

		if name == "" {
			name = lowerFirst(sf.Name)
		}

		f := repo.Field{Name: name}

		for _, o := range opts {
			switch o {
			case "required":
				f.Required = true
			case "hidden":
				f.Hidden = true
			}
		}

		if def, ok := sf.Tag.Lookup("default"); ok {
			f.Default = def
		}

		fields = append(fields, f)
	}

	return repo.NewSchema(fields...), nil
}

// parseTag splits a `repo` tag into its name part and option list.
func parseTag(tag string) (string, []string) {
	if tag == "" {
		return "", nil
	}

	parts := strings.Split(tag, ",")

	return parts[0], parts[1:]
}

func lowerFirst(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:]
}
