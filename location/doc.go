// Package location converts user-supplied location specifiers into canonical,
// bounds-checked element index sequences.
//
// A specifier is one of three variants:
//
//   - Positions: integer positions; zero entries mean "omit", and an
//     all-negative specifier is an exclusion set (when enabled).
//   - Mask: a boolean mask of the target length, or a single broadcast value.
//   - Names: element names looked up against a name table.
//
// Resolve returns a sequence of one-based indices, each within [1, n], in
// output order. Rejections carry the offending value so callers can build
// precise user-facing messages.
//
// Example:
//
//	idx, err := location.Resolve(location.Positions{-2, -4}, 5, nil)
//	// idx == []int{1, 3, 5}
package location
