package domain

import (
	"fmt"
	"time"
)

// AggregationPolicy is how selected hours are measured against a minimum duration
type AggregationPolicy string

const (
	// PolicySum counts every selected hour of the week
	PolicySum AggregationPolicy = "sum"
	// PolicyLongest takes the longest single contiguous block
	PolicyLongest AggregationPolicy = "longest"
)

// ParseAggregationPolicy parses a policy name
func ParseAggregationPolicy(s string) (AggregationPolicy, error) {
	switch AggregationPolicy(s) {
	case PolicySum, PolicyLongest:
		return AggregationPolicy(s), nil
	default:
		return "", fmt.Errorf("unknown aggregation policy %q", s)
	}
}

// ApplicationRound is an application period with the capacity available for allocation
type ApplicationRound struct {
	ID                       int64
	Name                     string
	ReservationPeriodBegin   time.Time
	ReservationPeriodEnd     time.Time
	TotalHourCapacity        float64
	TotalReservationDuration int64 // seconds
}

// AllocationResult is a backend-computed assignment of a section to a reservation unit
type AllocationResult struct {
	ID                   int64
	ApplicationRoundID   int64
	ReservationUnitID    int64
	ApplicationSectionID int64
	ReservationsTotal    int
	DurationTotal        int64 // seconds
}

// AllocationCapacity summarises how much of a round has been allocated
type AllocationCapacity struct {
	Percentage       int
	Volume           int
	Hours            float64
	DemandPercentage int
}
