package utils

// Uniq returns s without later duplicates, preserving first positions.
func Uniq[S ~[]E, E comparable](s S) S {
	seen := make(map[E]struct{}, len(s))
	out := make(S, 0, len(s))

	for _, e := range s {
		if _, ok := seen[e]; ok {
			continue
		}

		seen[e] = struct{}{}
		out = append(out, e)
	}

	return out
}

// Dupes returns the elements appearing more than once, each reported once, in
// first-appearance order.
func Dupes[S ~[]E, E comparable](s S) S {
	count := make(map[E]int, len(s))
	for _, e := range s {
		count[e]++
	}

	var out S

	for _, e := range Uniq(s) {
		if count[e] > 1 {
			out = append(out, e)
		}
	}

	return out
}
