package edgeio

import (
	"io"
	"math"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvseg/segment"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// graphDoc is the JSON layout of an edge list.
type graphDoc struct {
	Vertices *int        `json:"vertices,omitempty"`
	Edges    [][]float64 `json:"edges"`
	Order    []int       `json:"order,omitempty"`
}

// labelsDoc is the JSON layout of a segmentation result.
type labelsDoc struct {
	Labels   []int         `json:"labels"`
	Segments int           `json:"segments"`
	Sizes    []int         `json:"sizes"`
	Stats    segment.Stats `json:"stats"`
}

// ReadJSON decodes a graph document from r.
//
// Each edge is a three-element array [a, b, weight] whose endpoints must be integral.
// A missing "vertices" is inferred from the largest endpoint.
func ReadJSON(r io.Reader) (*Graph, error) {
	var doc graphDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrapf(ErrMalformed, "json: %v", err)
	}

	edges := make([]segment.Edge, len(doc.Edges))
	for i, t := range doc.Edges {
		if len(t) != 3 {
			return nil, errors.Wrapf(ErrMalformed, "json edge %d has %d fields, want 3", i, len(t))
		}
		a, okA := integral(t[0])
		b, okB := integral(t[1])
		if !okA || !okB {
			return nil, errors.Wrapf(ErrMalformed, "json edge %d endpoints %v, %v are not integers", i, t[0], t[1])
		}
		edges[i] = segment.Edge{A: a, B: b, Weight: t[2]}
	}

	g := &Graph{Edges: edges, Order: doc.Order}
	if doc.Vertices != nil {
		g.Vertices = *doc.Vertices
	} else {
		g.Vertices = inferVertices(edges)
	}

	return g, nil
}

// integral converts v to int when it has no fractional part.
func integral(v float64) (int, bool) {
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, false
	}

	return int(v), true
}
