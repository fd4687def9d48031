package openinghours

import (
	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
	"github.com/m04kA/SMC-ApplicationRounds/pkg/types"
)

// cachedPeriod формат периода в кэше
type cachedPeriod struct {
	Day   int    `json:"day"`
	Begin string `json:"begin"`
	End   string `json:"end"`
}

func toCached(hours *domain.OpeningHours) []cachedPeriod {
	periods := make([]cachedPeriod, 0)
	for day, list := range hours {
		for _, p := range list {
			periods = append(periods, cachedPeriod{Day: day, Begin: p.Begin.String(), End: p.End.String()})
		}
	}
	return periods
}

func fromCached(periods []cachedPeriod) *domain.OpeningHours {
	var hours domain.OpeningHours
	for _, p := range periods {
		if p.Day < 0 || p.Day >= domain.DaysInWeek {
			continue
		}
		hours[p.Day] = append(hours[p.Day], domain.OpenPeriod{
			Begin: types.TimeString(p.Begin),
			End:   types.TimeString(p.End),
		})
	}
	return &hours
}
