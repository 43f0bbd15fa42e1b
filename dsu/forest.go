package dsu

import "errors"

// ErrNegativeSize indicates that a forest was requested for a negative element count.
var ErrNegativeSize = errors.New("dsu: element count must be non-negative")

// Forest is a disjoint-set forest over the elements [0, n).
//
// parent[x] points toward the root of x's group; a root points at itself.
// rank[x] is an upper bound on the height of the tree rooted at x and never decreases.
// size[x] is the number of elements in the group rooted at x and is stale for non-roots.
type Forest struct {
	parent []int
	rank   []int
	size   []int
	groups int
}

// New creates a Forest of n singleton groups: every element is its own root,
// with rank 0 and size 1.
//
// Returns ErrNegativeSize if n < 0. n == 0 yields an empty, usable forest.
//
// Complexity: O(n) time and memory.
func New(n int) (*Forest, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}

	f := &Forest{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   make([]int, n),
		groups: n,
	}
	for i := 0; i < n; i++ {
		f.parent[i] = i
		f.size[i] = 1
	}

	return f, nil
}

// Find returns the root of x's group.
//
// Only x itself is compressed: after the walk, parent[x] is set to the root,
// the intermediate nodes keep their links.
func (f *Forest) Find(x int) int {
	// 1. Walk up until an element points at itself.
	y := x
	for y != f.parent[y] {
		y = f.parent[y]
	}
	// 2. Point the queried element straight at the root.
	f.parent[x] = y

	return y
}

// Join merges the groups rooted at x and y. Both must be roots (call Find first)
// and must differ.
//
// The root of lower rank is attached under the root of higher rank. On a tie,
// y becomes the root and its rank grows by one. The surviving root's size
// becomes the sum of both sizes and the group count drops by one.
func (f *Forest) Join(x, y int) {
	if f.rank[x] > f.rank[y] {
		f.parent[y] = x
		f.size[x] += f.size[y]
	} else {
		f.parent[x] = y
		f.size[y] += f.size[x]
		if f.rank[x] == f.rank[y] {
			f.rank[y]++
		}
	}
	f.groups--
}

// Size returns the cached group size of x. The value is meaningful only while x is a root.
func (f *Forest) Size(x int) int { return f.size[x] }

// Rank returns the cached rank of x.
func (f *Forest) Rank(x int) int { return f.rank[x] }

// Groups returns the number of distinct groups currently in the forest.
func (f *Forest) Groups() int { return f.groups }

// Len returns the number of elements the forest was created with.
func (f *Forest) Len() int { return len(f.parent) }
