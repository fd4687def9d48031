package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Priority is the applicant's declared preference for a weekly time slot
type Priority int

const (
	PriorityNone      Priority = 0
	PrioritySecondary Priority = 200
	PriorityPrimary   Priority = 300
)

// IsSelected returns true if the slot was requested at any priority
func (p Priority) IsSelected() bool {
	return p != PriorityNone
}

// IsValid returns true for the known priority values
func (p Priority) IsValid() bool {
	return p == PriorityNone || p == PrioritySecondary || p == PriorityPrimary
}

func (p Priority) String() string {
	switch p {
	case PriorityPrimary:
		return "primary"
	case PrioritySecondary:
		return "secondary"
	case PriorityNone:
		return "none"
	default:
		return strconv.Itoa(int(p))
	}
}

// ParsePriority accepts either the name ("primary") or the wire value ("300")
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "0":
		return PriorityNone, nil
	case "secondary", "200":
		return PrioritySecondary, nil
	case "primary", "300":
		return PriorityPrimary, nil
	default:
		return PriorityNone, fmt.Errorf("unknown priority %q", s)
	}
}

// Availability tells whether the reservation unit is open during a cell
type Availability string

const (
	AvailabilityUnknown Availability = ""
	AvailabilityOpen    Availability = "open"
	AvailabilityClosed  Availability = "closed"
)

// Cell is one hour of one weekday in the calendar grid.
// Availability and Priority are independent: a closed cell may still be requested.
type Cell struct {
	Hour         int
	Label        string
	Availability Availability
	Priority     Priority
}

// End returns the exclusive end hour of the cell
func (c Cell) End() int {
	return c.Hour + 1
}

// Grid is the weekly calendar: index 0 is Monday, 6 is Sunday.
// Each day holds one cell per hour of the window, ordered by hour.
type Grid [DaysInWeek][]Cell

// Window is the inclusive hour range covered by a grid
type Window struct {
	FirstHour int
	LastHour  int
}

// DefaultWindow returns the 07-23 window used by both front-ends
func DefaultWindow() Window {
	return Window{FirstHour: DefaultFirstHour, LastHour: DefaultLastHour}
}

// Hours returns the number of cells per day
func (w Window) Hours() int {
	return w.LastHour - w.FirstHour + 1
}

// Validate checks the window fits in a day
func (w Window) Validate() error {
	if w.FirstHour < 0 || w.LastHour >= HoursInDay || w.FirstHour > w.LastHour {
		return fmt.Errorf("invalid grid window %d-%d", w.FirstHour, w.LastHour)
	}
	return nil
}

// Contains returns true if the hour is inside the window
func (w Window) Contains(hour int) bool {
	return hour >= w.FirstHour && hour <= w.LastHour
}
