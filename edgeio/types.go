package edgeio

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvseg/segment"
)

// ErrMalformed indicates input that does not follow the expected format.
var ErrMalformed = errors.New("edgeio: malformed input")

// Graph is an edge list ready for segment.Segment.
type Graph struct {
	// Vertices is the element count n.
	Vertices int
	// Edges lists the weighted edges in file order.
	Edges []segment.Edge
	// Order is an optional precomputed visitation order; nil when absent.
	Order []int
}

// inferVertices returns the largest endpoint plus one, or 0 without edges.
func inferVertices(edges []segment.Edge) int {
	n := 0
	for _, e := range edges {
		if e.A+1 > n {
			n = e.A + 1
		}
		if e.B+1 > n {
			n = e.B + 1
		}
	}

	return n
}
