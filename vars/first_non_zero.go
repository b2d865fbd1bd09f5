package vars

import "cmp"

// FirstNonZero picks the first set value, so flags can be layered over
// config files and defaults.
func FirstNonZero[T comparable](values ...T) T {
	return cmp.Or(values...)
}
