// Package edgeio reads edge lists and writes cluster labels for the lvseg command.
//
// It only moves already computed data in and out of files: edge weights and the
// graph itself are produced elsewhere.
//
// Formats:
//
//   - CSV:  one edge per row, "a,b,weight". Lines starting with '#' and an optional
//     leading header row are ignored. The element count is given by the caller or
//     inferred as the largest endpoint plus one.
//   - JSON: {"vertices": n, "edges": [[a, b, w], ...], "order": [p0, p1, ...]}.
//     "vertices" and "order" are optional.
//   - Order files: whitespace separated edge indices.
//
// Compression:
//
//	Open and Create handle ".gz" (gzip) and ".zst" (zstd) suffixes transparently.
//	The path "-" means stdin or stdout.
//
// Errors:
//
//   - ErrMalformed: a row, tuple or index could not be parsed.
package edgeio
