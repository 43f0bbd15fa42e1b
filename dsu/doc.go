// Package dsu provides a flat, slice-backed disjoint-set forest (union-find)
// used by the segmentation passes of github.com/katalvlaran/lvseg.
//
// What:
//
//   - Forest partitions n elements, identified by indices [0, n), into disjoint groups.
//   - Find returns a group's root and compresses the queried element onto it.
//   - Join merges two roots by rank and keeps the surviving root's group size.
//
// Why:
//
//   - Parent links are plain indices into one array, so the whole forest shares a
//     single lifetime and no per-node allocation happens.
//   - Group sizes are cached at roots, which the adaptive threshold c/|C| and the
//     small-segment cleanup both read after every merge.
//
// Complexity:
//
//   - New:   O(n) time, O(n) memory.
//   - Find:  amortized near-constant with rank-based Join.
//   - Join:  O(1).
//
// Concurrency:
//
//	A Forest is not safe for concurrent use. Each segmentation call owns its own
//	Forest for the duration of the call.
//
// Errors:
//
//   - ErrNegativeSize: New was called with n < 0.
package dsu
