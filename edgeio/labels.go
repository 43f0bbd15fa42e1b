package edgeio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvseg/segment"
)

// WriteLabels writes one cluster id per line, in element order.
func WriteLabels(w io.Writer, labels []int) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)
	for _, id := range labels {
		buf = strconv.AppendInt(buf[:0], int64(id), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrap(err, "write labels")
		}
	}

	return errors.Wrap(bw.Flush(), "write labels")
}

// WriteLabelsJSON writes res as {"labels": [...], "segments": k, "sizes": [...], "stats": {...}}.
func WriteLabelsJSON(w io.Writer, res *segment.Result) error {
	doc := labelsDoc{
		Labels:   res.Labels,
		Segments: res.NumSegments,
		Sizes:    res.Sizes,
		Stats:    res.Stats,
	}
	if doc.Labels == nil {
		doc.Labels = []int{}
	}
	if doc.Sizes == nil {
		doc.Sizes = []int{}
	}

	return errors.Wrap(json.NewEncoder(w).Encode(&doc), "write labels")
}
