// Package segment implements Felzenszwalb–Huttenlocher greedy graph segmentation
// over a plain, index-based edge list.
//
// What:
//
//	Given n elements and weighted edges between them, Segment partitions the
//	elements into connected groups ("segments") such that edges inside a segment
//	tend to be light compared with the edges that would join two segments.
//
// Algorithm Outline:
//  1. Order the edges by non-decreasing weight (stable on the original position),
//     or use the order supplied through WithOrder.
//  2. Greedy pass: every element starts as its own group with threshold c.
//     For each edge (u, v, w), if u and v are in different groups A and B and
//     w ≤ threshold(A) and w ≤ threshold(B), merge them and set the merged
//     group's threshold to w + c/|A∪B|.
//  3. Cleanup pass (MinSize > 0): sweep the same order once more and merge any
//     two different groups joined by an edge when either is smaller than MinSize.
//     The sweep is never repeated to a fixpoint.
//  4. Relabel: scan elements 0..n-1 and number each group on first sight,
//     giving contiguous cluster ids [0, k).
//
// Parameters:
//
//   - Scale (c): larger values favour larger, fewer segments. Must be finite and > 0.
//   - MinSize: minimum segment size enforced by the cleanup pass; ≤ 0 disables it.
//   - Order: optional precomputed permutation of edge indices in weight order.
//
// Complexity:
//
//	Time   = O(m log m + (n + m)·α(n)), sorting dominates unless Order is supplied.
//	Memory = O(n + m).
//
// Concurrency:
//
//	Each call owns a fresh forest and threshold table; calls share no state and may
//	run concurrently. A single call is strictly sequential.
//
// Errors:
//
//   - ErrInvalidSize      — n < 0, or an edge endpoint outside [0, n).
//   - ErrInvalidOrder     — supplied order of wrong length or not a permutation of [0, m).
//   - ErrInvalidParameter — non-positive or non-finite scale, non-finite or negative weight.
//
// All checks run before any work is done; a failed call produces no partial result.
package segment
