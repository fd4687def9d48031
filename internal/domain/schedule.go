package domain

import "github.com/m04kA/SMC-ApplicationRounds/pkg/types"

// TimeRange is an application event schedule: a contiguous block on one weekday.
// EndTime "00:00" means the end of the day.
type TimeRange struct {
	Day       int
	BeginTime types.TimeString
	EndTime   types.TimeString
	Priority  Priority
}

// OpenPeriod is a half-open [Begin, End) opening period of a reservation unit.
// End "00:00" means the end of the day.
type OpenPeriod struct {
	Begin types.TimeString
	End   types.TimeString
}

// OpeningHours holds the open periods of a reservation unit per weekday (0 = Monday)
type OpeningHours [DaysInWeek][]OpenPeriod

// IsOpen returns true if hour h of day falls inside any open period
func (o *OpeningHours) IsOpen(day, hour int) bool {
	if o == nil || day < 0 || day >= DaysInWeek {
		return false
	}
	for _, p := range o[day] {
		begin, err := p.Begin.Hour()
		if err != nil {
			continue
		}
		end, err := p.End.EndHour()
		if err != nil {
			continue
		}
		if begin <= hour && hour < end {
			return true
		}
	}
	return false
}

// ApplicationSection is one recurring-reservation request inside an application
type ApplicationSection struct {
	ID                         int64
	ApplicationID              int64
	ApplicationRoundID         int64
	Name                       string
	MinDurationSeconds         int64
	MaxDurationSeconds         int64
	AppliedReservationsPerWeek int
	Position                   int
	SuitableTimeRanges         []TimeRange
}
