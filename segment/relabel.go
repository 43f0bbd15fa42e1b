package segment

import "github.com/katalvlaran/lvseg/dsu"

// relabel assigns contiguous cluster ids to the groups of f.
//
// Elements are scanned in ascending index order; a group receives the next id
// the first time one of its members is seen, so ids follow each group's
// smallest member. Returns labels (one per element) and sizes (one per id).
func relabel(f *dsu.Forest) (labels, sizes []int) {
	n := f.Len()
	labels = make([]int, n)
	sizes = make([]int, 0, f.Groups())
	// rootID[r] is the id given to root r, -1 while unseen.
	rootID := make([]int, n)
	for i := range rootID {
		rootID[i] = -1
	}

	for i := 0; i < n; i++ {
		r := f.Find(i)
		id := rootID[r]
		if id == -1 {
			id = len(sizes)
			rootID[r] = id
			sizes = append(sizes, 0)
		}
		labels[i] = id
		sizes[id]++
	}

	return labels, sizes
}
