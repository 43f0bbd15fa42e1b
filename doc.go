// Package lvseg segments weighted graphs into coherent regions with the
// Felzenszwalb–Huttenlocher greedy criterion.
//
// What is lvseg?
//
//	A small, pure-Go toolkit around one algorithm:
//		• dsu/     — flat disjoint-set forest (union by rank, path compression)
//		• segment/ — edge ordering, greedy merge pass, small-segment cleanup, relabeling
//		• edgeio/  — CSV / JSON edge lists and label output, gzip and zstd aware
//		• config/  — TOML configuration of the command
//		• metrics/ — Prometheus collectors updated by every segmentation call
//		• cmd/lvseg — command-line front end
//
// How it works:
//
//	Edges are visited by non-decreasing weight. Two groups merge when the edge
//	between them is no heavier than either group's threshold, and a merged group
//	of size |C| gets threshold w + c/|C|. Larger groups therefore need ever more
//	similar neighbours to keep growing. An optional sweep then folds groups
//	smaller than a minimum size into a neighbour, and elements are numbered by
//	group in order of their smallest member.
//
// Quick ASCII example:
//
//	0 —0.1— 1 —0.2— 2 —10.0— 3      c = 1
//
//	labels: [0 0 0 1]
//
// Computing edge weights and building the graph (pixel grids, k-NN graphs)
// are left to the caller.
//
//	go install github.com/katalvlaran/lvseg/cmd/lvseg@latest
package lvseg
