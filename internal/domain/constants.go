package domain

import "time"

// Weekly grid bounds
const (
	DaysInWeek = 7

	// DefaultFirstHour and DefaultLastHour are the inclusive hour window of the calendar grid
	DefaultFirstHour = 7
	DefaultLastHour  = 23

	HoursInDay     = 24
	SecondsPerHour = 3600
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveReservationStates reservations in these states never take part in collision checks
var InactiveReservationStates = []ReservationState{
	ReservationStateCancelled,
	ReservationStateDenied,
}

// CollisionSearchMargin widens the window of stored reservations loaded for a collision check,
// so that reservations whose buffers reach into the window are not missed
const CollisionSearchMargin = 24 * time.Hour
