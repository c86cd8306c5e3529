// Package packet parses and orders distress-signal packets: arbitrarily
// nested, comma-separated lists of integers such as [1,[2,[3]],4].
//
// A Value is either a scalar integer or a list of Values. Compare defines a
// total order over Values:
//
//   - Two scalars compare numerically.
//   - Two lists compare element by element; the first unequal pair decides.
//     If every shared element is equal, the shorter list is smaller.
//   - A scalar meeting a list is promoted to a one-element list and the
//     comparison continues as list vs list. Promotion happens afresh at
//     every nesting level where the kinds differ.
//
// A pair of packets is "ordered" when its left side is strictly smaller.
//
// Grammar accepted by Parse:
//
//	packet = list
//	list   = "[" [ value { "," value } ] "]"
//	value  = list | int
//	int    = [ "-" ] digit { digit }
//
// Spaces between tokens are ignored. Anything else is a *SyntaxError
// wrapping ErrMalformed.
package packet
