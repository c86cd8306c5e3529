package packet

import "cmp"

// Compare returns -1 if a sorts before b, +1 if after, and 0 if they are
// equal under the packet order (see the package documentation).
func Compare(a, b Value) int {
	switch {
	case !a.IsList() && !b.IsList():
		return cmp.Compare(a.n, b.n)
	case a.IsList() && b.IsList():
		n := min(len(a.items), len(b.items))
		for i := 0; i < n; i++ {
			if c := Compare(a.items[i], b.items[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(a.items), len(b.items))
	default:
		return Compare(a.Promote(), b.Promote())
	}
}

// Ordered reports whether a is strictly less than b. Equal packets are not
// ordered.
func Ordered(a, b Value) bool { return Compare(a, b) < 0 }

// Equal reports whether a and b compare equal. Note that 1, [1] and [[1]]
// are all equal to each other.
func Equal(a, b Value) bool { return Compare(a, b) == 0 }
