package repo

import "reflect"

// IsEmpty reports whether a value counts as empty for defaulting and
// required-field checks. Nil, empty strings and zero-length collections are
// empty. Numeric and boolean zero values (0, 0.0, false) and the string "0"
// are NOT empty: an explicitly supplied falsy value must survive defaulting.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	default:
		return false

	case reflect.String:
		return rv.Len() == 0

	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0

	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}

		return IsEmpty(rv.Elem().Interface())
	}
}
