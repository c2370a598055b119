// Package repo implements read-only, validated data objects built from a
// field schema and an input map.
//
// A Repository is constructed once and is immutable afterwards. Construction
// runs a fixed pipeline:
//   - Visibility resolution: partition declared fields into exposed and hidden
//   - Assignment: consume the input map, resolve kebab-case keys, run setter hooks
//   - Defaulting: fill empty fields from computed or static defaults
//   - Required-field validation: fail if any required field is still empty
//
// Construction is all-or-nothing: any failure aborts it and no Repository is
// returned. After a successful New, the public surface offers reads only
// (Get, Has, ToMap, MarshalJSON, All); hidden fields are indistinguishable
// from nonexistent ones.
package repo
