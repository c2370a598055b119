package repo

// Option adjusts construction strictness.
type Option func(*config)

type config struct {
	requireSetters bool
	allowDupes     bool
}

// RequireSetters makes a field without a setter hook fatal when it receives
// an input value, instead of falling back to direct assignment. Off by
// default.
func RequireSetters() Option {
	return func(c *config) { c.requireSetters = true }
}

// AllowDuplicates disables the duplicate-name check performed during
// visibility resolution. The check is on by default.
func AllowDuplicates() Option {
	return func(c *config) { c.allowDupes = true }
}
