package segment_test

import (
	"math/rand"

	"github.com/katalvlaran/lvseg/segment"
)

// scenarioEdges is the three-edge path 0—1—2—3 with one heavy edge at the end.
func scenarioEdges() []segment.Edge {
	return []segment.Edge{
		{A: 0, B: 1, Weight: 0.1},
		{A: 1, B: 2, Weight: 0.2},
		{A: 2, B: 3, Weight: 10.0},
	}
}

// randomEdges builds m edges over n elements with weights in [0, maxW).
// The generator is seeded so the same seed always yields the same graph.
func randomEdges(seed int64, n, m int, maxW float64) []segment.Edge {
	r := rand.New(rand.NewSource(seed))
	edges := make([]segment.Edge, m)
	for i := range edges {
		edges[i] = segment.Edge{A: r.Intn(n), B: r.Intn(n), Weight: r.Float64() * maxW}
	}

	return edges
}

// gridEdges links the cells of a w×h grid to their right and lower neighbours,
// with weights from the seeded generator. Cells in the left half get light
// edges and cells in the right half heavy ones.
func gridEdges(seed int64, w, h int) []segment.Edge {
	r := rand.New(rand.NewSource(seed))
	weight := func(x int) float64 {
		if x < w/2 {
			return r.Float64() * 0.1
		}

		return 5 + r.Float64()*5
	}
	var edges []segment.Edge
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if x+1 < w {
				edges = append(edges, segment.Edge{A: i, B: i + 1, Weight: weight(x)})
			}
			if y+1 < h {
				edges = append(edges, segment.Edge{A: i, B: i + w, Weight: weight(x)})
			}
		}
	}

	return edges
}
