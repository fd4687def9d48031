package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
)

func TestSumSelectedHours(t *testing.T) {
	grid := emptyGrid(t)
	selectHours(&grid, 0, domain.PriorityPrimary, 7, 8, 9)
	selectHours(&grid, 3, domain.PrioritySecondary, 15, 20)

	assert.Equal(t, 5, SumSelectedHours(grid, domain.PriorityNone))
	assert.Equal(t, 3, SumSelectedHours(grid, domain.PriorityPrimary))
	assert.Equal(t, 2, SumSelectedHours(grid, domain.PrioritySecondary))
}

func TestLongestContiguousBlock(t *testing.T) {
	grid := emptyGrid(t)
	selectHours(&grid, 0, domain.PriorityPrimary, 7, 8)
	selectHours(&grid, 0, domain.PrioritySecondary, 9, 10, 11)
	selectHours(&grid, 5, domain.PriorityPrimary, 12, 13, 14, 16)

	assert.Equal(t, 3, LongestContiguousBlock(grid, domain.PriorityNone))
	assert.Equal(t, 3, LongestContiguousBlock(grid, domain.PriorityPrimary))
	assert.Equal(t, 3, LongestContiguousBlock(grid, domain.PrioritySecondary))
	assert.Equal(t, 0, LongestContiguousBlock(emptyGrid(t), domain.PriorityNone))
}

func TestSelectedHoursPerSchedule_Policies(t *testing.T) {
	split := emptyGrid(t)
	selectHours(&split, 1, domain.PriorityPrimary, 8, 10, 12)

	block := emptyGrid(t)
	selectHours(&block, 2, domain.PriorityPrimary, 8, 9)

	grids := []domain.Grid{split, block}

	sum, err := SelectedHoursPerSchedule(grids, domain.PriorityNone, domain.PolicySum)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, sum)

	longest, err := SelectedHoursPerSchedule(grids, domain.PriorityNone, domain.PolicyLongest)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, longest)

	_, err = SelectedHoursPerSchedule(grids, domain.PriorityNone, "median")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestFindUnderMinimumDuration(t *testing.T) {
	// 1.5h minimum: one hour is not enough, two hours are
	assert.Equal(t, []int{0}, FindUnderMinimumDuration([]int64{5400, 5400}, []int{1, 2}))

	assert.Equal(t, []int{}, FindUnderMinimumDuration([]int64{3600}, []int{1}))
	assert.Equal(t, []int{1}, FindUnderMinimumDuration([]int64{0, 7200, 3600}, []int{0, 1}))
	assert.Empty(t, FindUnderMinimumDuration(nil, nil))
}
