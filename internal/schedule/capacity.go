package schedule

import (
	"math"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
)

// ComputeAllocationCapacity суммирует результаты распределения.
// Значение справочное: при нулевой ёмкости процент равен 0, а не ошибке
func ComputeAllocationCapacity(
	allocations []domain.AllocationResult,
	totalHourCapacity float64,
	totalReservationDuration int64,
) domain.AllocationCapacity {
	var (
		volume  int
		seconds int64
	)
	for _, a := range allocations {
		volume += a.ReservationsTotal
		seconds += a.DurationTotal
	}

	hours := float64(seconds) / domain.SecondsPerHour

	return domain.AllocationCapacity{
		Percentage:       percentOf(hours, totalHourCapacity),
		Volume:           volume,
		Hours:            hours,
		DemandPercentage: percentOf(hours, float64(totalReservationDuration)/domain.SecondsPerHour),
	}
}

func percentOf(part, whole float64) int {
	if whole <= 0 || math.IsNaN(whole) {
		return 0
	}
	return int(math.Round(100 * part / whole))
}
