package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
)

func TestComputeAllocationCapacity_ZeroGuard(t *testing.T) {
	got := ComputeAllocationCapacity(nil, 0, 0)
	assert.Equal(t, domain.AllocationCapacity{}, got)
}

func TestComputeAllocationCapacity(t *testing.T) {
	allocations := []domain.AllocationResult{
		{ReservationsTotal: 10, DurationTotal: 10 * 3600},
		{ReservationsTotal: 5, DurationTotal: 5 * 5400},
	}

	got := ComputeAllocationCapacity(allocations, 100, 50*3600)

	assert.Equal(t, 15, got.Volume)
	assert.InDelta(t, 17.5, got.Hours, 1e-9)
	assert.Equal(t, 18, got.Percentage) // 17.5 rounds half away from zero
	assert.Equal(t, 35, got.DemandPercentage)
}

func TestComputeAllocationCapacity_NoCapacityStillSums(t *testing.T) {
	allocations := []domain.AllocationResult{{ReservationsTotal: 3, DurationTotal: 7200}}

	got := ComputeAllocationCapacity(allocations, 0, 0)

	assert.Equal(t, 3, got.Volume)
	assert.InDelta(t, 2, got.Hours, 1e-9)
	assert.Zero(t, got.Percentage)
	assert.Zero(t, got.DemandPercentage)
}
