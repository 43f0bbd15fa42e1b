package edgeio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// ReadOrder reads whitespace separated edge indices from r.
// Only the syntax is checked here; segment.ValidateOrder checks the permutation.
func ReadOrder(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	order := []int{}
	for sc.Scan() {
		p, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "order entry %d: %q", len(order), sc.Text())
		}
		order = append(order, p)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read order")
	}

	return order, nil
}
