package repo

import (
	"bytes"
	"encoding/json"
	"iter"
	"sort"
)

// Repository is a read-only validated data object. It is fully initialized by
// New or not usable at all; no mutation entry points exist after that.
type Repository struct {
	schema  *Schema
	exposed []string
	values  map[string]any
}

// New runs the construction pipeline: visibility resolution, assignment from
// the input map, defaulting, then required-field validation. Any failure
// aborts construction and no Repository is returned.
//
// Input keys address fields either literally ("startDate") or in kebab form
// ("start-date"). Assignment processes resolved keys in schema declaration
// order, so setter hooks fire deterministically regardless of map iteration.
func New(s *Schema, input map[string]any, opts ...Option) (*Repository, error) {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}

	if !cfg.allowDupes && len(s.duplicates) > 0 {
		return nil, &DuplicatePropertiesError{Names: s.duplicates}
	}

	exposed := make([]string, 0, len(s.fields))

	for _, f := range s.fields {
		if !f.Hidden {
			exposed = append(exposed, f.Name)
		}
	}

	values, err := assign(s, input, cfg)
	if err != nil {
		return nil, err
	}

	applyDefaults(s, values)

	if missing := emptyRequired(s, values); len(missing) > 0 {
		return nil, &EmptyRequirementsError{Names: missing}
	}

	return &Repository{schema: s, exposed: exposed, values: values}, nil
}

// assign resolves every input key to a declared field and writes its value
// through the field's setter hook when one exists. Unknown keys are fatal;
// the lexicographically first one is reported.
func assign(s *Schema, input map[string]any, cfg config) (map[string]any, error) {
	keys := make([]string, 0, len(input))
	for k := range input {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	pending := make(map[string]any, len(input))

	for _, k := range keys {
		f, ok := s.lookup(k)
		if !ok {
			return nil, &UnknownPropertyError{Name: k}
		}

		pending[f.Name] = input[k]
	}

	values := make(map[string]any, len(s.fields))

	for _, f := range s.fields {
		raw, ok := pending[f.Name]
		if !ok {
			continue
		}

		switch {
		case f.Setter != nil:
			v, err := f.Setter(raw)
			if err != nil {
				return nil, err
			}

			values[f.Name] = v

		case cfg.requireSetters:
			return nil, &UnknownSetterError{Name: f.Name}

		default:
			values[f.Name] = raw
		}
	}

	return values, nil
}

// applyDefaults fills every still-empty field, hidden ones included. Computed
// defaults win over static ones. Best-effort: never errors.
func applyDefaults(s *Schema, values map[string]any) {
	var computed map[string]any
	if s.defaults != nil {
		computed = s.defaults()
	}

	for _, f := range s.fields {
		if !IsEmpty(values[f.Name]) {
			continue
		}

		if v, ok := computed[f.Name]; ok {
			values[f.Name] = v
			continue
		}

		if f.Default != nil {
			values[f.Name] = f.Default
		}
	}
}

// emptyRequired collects every required field that is still empty after
// defaulting, in declaration order.
func emptyRequired(s *Schema, values map[string]any) []string {
	var missing []string

	for _, f := range s.fields {
		if f.Required && IsEmpty(values[f.Name]) {
			missing = append(missing, f.Name)
		}
	}

	return missing
}

// Get returns the value of an exposed field, through its getter hook when one
// is declared. Hidden fields are indistinguishable from nonexistent ones:
// both fail with an UnknownPropertyError.
func (r *Repository) Get(name string) (any, error) {
	if !r.Has(name) {
		return nil, &UnknownPropertyError{Name: name}
	}

	f := r.schema.fields[r.schema.index[name]]

	v := r.values[name]
	if f.Getter != nil {
		return f.Getter(v), nil
	}

	return v, nil
}

// Has reports whether name is an exposed field.
func (r *Repository) Has(name string) bool {
	i, ok := r.schema.index[name]
	return ok && !r.schema.fields[i].Hidden
}

// Fields returns the exposed field names in declaration order.
func (r *Repository) Fields() []string {
	out := make([]string, len(r.exposed))
	copy(out, r.exposed)

	return out
}

// ToMap exports every exposed field, getter hooks honored. Ordered access
// goes through Fields or All; the map content is identical to MarshalJSON.
func (r *Repository) ToMap() map[string]any {
	out := make(map[string]any, len(r.exposed))

	for _, name := range r.exposed {
		v, _ := r.Get(name)
		out[name] = v
	}

	return out
}

// All iterates the exposed fields as (name, value) pairs in declaration
// order, getter hooks honored. Ranging again restarts from the first field.
func (r *Repository) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, name := range r.exposed {
			v, _ := r.Get(name)
			if !yield(name, v) {
				return
			}
		}
	}
}

// MarshalJSON writes the exposed fields as a JSON object whose keys keep the
// declaration order, with the same content as ToMap.
func (r *Repository) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, name := range r.exposed {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')

		v, _ := r.Get(name)

		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}

		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
