package edgeio

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvseg/segment"
)

// ReadCSV reads "a,b,weight" rows from r.
//
// A first row in which none of the three fields is a number is treated as a
// header and skipped; any other unparsable row is ErrMalformed. vertices > 0
// is used as the element count as-is; otherwise the count is inferred from the
// largest endpoint. Endpoint range and weight checks are
// left to segment.Segment.
func ReadCSV(r io.Reader, vertices int) (*Graph, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var edges []segment.Edge
	for row := 0; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "csv: %v", err)
		}
		a, errA := strconv.Atoi(strings.TrimSpace(rec[0]))
		b, errB := strconv.Atoi(strings.TrimSpace(rec[1]))
		w, errW := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
		if row == 0 && isHeader(rec) {
			continue
		}
		if errA != nil || errB != nil || errW != nil {
			line, _ := cr.FieldPos(0)
			return nil, errors.Wrapf(ErrMalformed, "csv line %d: %q", line, strings.Join(rec, ","))
		}
		edges = append(edges, segment.Edge{A: a, B: b, Weight: w})
	}

	if vertices <= 0 {
		vertices = inferVertices(edges)
	}

	return &Graph{Vertices: vertices, Edges: edges}, nil
}

// isHeader reports whether no field of rec parses as a number.
func isHeader(rec []string) bool {
	for _, f := range rec {
		if _, err := strconv.ParseFloat(strings.TrimSpace(f), 64); err == nil {
			return false
		}
	}

	return true
}
