package domain

import "time"

// ReservationType of a persisted reservation
type ReservationType string

const (
	ReservationTypeNormal   ReservationType = "normal"
	ReservationTypeBlocked  ReservationType = "blocked"
	ReservationTypeStaff    ReservationType = "staff"
	ReservationTypeBehalf   ReservationType = "behalf"
	ReservationTypeSeasonal ReservationType = "seasonal"
)

// IsBlocked returns true for blocking reservations, which never carry buffers
func (t ReservationType) IsBlocked() bool {
	return t == ReservationTypeBlocked
}

// ReservationState of a persisted reservation
type ReservationState string

const (
	ReservationStateCreated   ReservationState = "created"
	ReservationStateConfirmed ReservationState = "confirmed"
	ReservationStateCancelled ReservationState = "cancelled"
	ReservationStateDenied    ReservationState = "denied"
)

// Reservation is an existing reservation of a reservation unit
type Reservation struct {
	ID                int64
	ReservationUnitID int64
	Begin             time.Time
	End               time.Time
	BufferBefore      time.Duration
	BufferAfter       time.Duration
	Type              ReservationType
	State             ReservationState
	SeriesID          *int64
}

// CollisionInterval is a reservation reduced to what the collision check needs
type CollisionInterval struct {
	Start        time.Time
	End          time.Time
	BufferBefore time.Duration
	BufferAfter  time.Duration
	Type         ReservationType
	SeriesID     *int64
}

// Period is a date range [Begin, End], both inclusive by date
type Period struct {
	Begin time.Time
	End   time.Time
}

// ReservationUnit is a bookable space with the buffers applied to new reservations
type ReservationUnit struct {
	ID           int64
	Name         string
	BufferBefore time.Duration
	BufferAfter  time.Duration
}
