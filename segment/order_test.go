package segment_test

import (
	"testing"

	"github.com/katalvlaran/lvseg/segment"
	"github.com/stretchr/testify/assert"
)

// TestSortOrder_StableTies verifies ascending weights with ties kept in input order.
func TestSortOrder_StableTies(t *testing.T) {
	edges := []segment.Edge{
		{A: 0, B: 1, Weight: 1},
		{A: 1, B: 2, Weight: 0.5},
		{A: 2, B: 3, Weight: 1},
		{A: 3, B: 4, Weight: 0.5},
		{A: 4, B: 5, Weight: 0},
	}
	assert.Equal(t, []int{4, 1, 3, 0, 2}, segment.SortOrder(edges))
	// Input weights are untouched.
	assert.Equal(t, 1.0, edges[0].Weight)
}

// TestSortOrder_Empty returns an empty, non-nil order.
func TestSortOrder_Empty(t *testing.T) {
	order := segment.SortOrder(nil)
	assert.NotNil(t, order)
	assert.Empty(t, order)
}

// TestValidateOrder covers accepted and rejected permutations.
func TestValidateOrder(t *testing.T) {
	assert.NoError(t, segment.ValidateOrder([]int{2, 0, 1}, 3))
	assert.NoError(t, segment.ValidateOrder([]int{}, 0))

	assert.ErrorIs(t, segment.ValidateOrder([]int{0, 1}, 3), segment.ErrInvalidOrder)
	assert.ErrorIs(t, segment.ValidateOrder([]int{0, 1, 2, 3}, 3), segment.ErrInvalidOrder)
	assert.ErrorIs(t, segment.ValidateOrder([]int{0, 0, 1}, 3), segment.ErrInvalidOrder)
	assert.ErrorIs(t, segment.ValidateOrder([]int{0, -1, 1}, 3), segment.ErrInvalidOrder)
	assert.ErrorIs(t, segment.ValidateOrder([]int{0, 3, 1}, 3), segment.ErrInvalidOrder)
}
