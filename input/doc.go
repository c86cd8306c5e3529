// Package input turns raw puzzle text into the ordered line sequences every
// solver consumes.
//
// Lines are split on '\n' and trimmed of surrounding whitespace, so both Unix
// and Windows line endings collapse to the same content. Blocks groups
// consecutive non-blank lines, which is how paired or sectioned inputs are
// delimited.
//
// Errors:
//
//   - ErrEmptyInput: the source contained no non-blank line.
package input
