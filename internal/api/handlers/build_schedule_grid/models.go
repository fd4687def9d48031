package build_schedule_grid

import (
	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
	buildScheduleGrid "github.com/m04kA/SMC-ApplicationRounds/internal/usecase/build_schedule_grid"
)

// CellResponse ячейка сетки
type CellResponse struct {
	Hour         int    `json:"hour"`
	Label        string `json:"label"`                  // "07"
	Availability string `json:"availability,omitempty"` // "open" | "closed"
	Priority     int    `json:"priority"`               // 0 | 200 | 300
}

// GridResponse HTTP response model
type GridResponse struct {
	SectionID int64            `json:"sectionId"`
	FirstHour int              `json:"firstHour"`
	LastHour  int              `json:"lastHour"`
	Days      [][]CellResponse `json:"days"` // 7 дней, 0 = понедельник
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *buildScheduleGrid.Response) *GridResponse {
	days := make([][]CellResponse, domain.DaysInWeek)
	for day, cells := range resp.Grid {
		days[day] = make([]CellResponse, len(cells))
		for i, c := range cells {
			days[day][i] = CellResponse{
				Hour:         c.Hour,
				Label:        c.Label,
				Availability: string(c.Availability),
				Priority:     int(c.Priority),
			}
		}
	}

	return &GridResponse{
		SectionID: resp.SectionID,
		FirstHour: resp.Window.FirstHour,
		LastHour:  resp.Window.LastHour,
		Days:      days,
	}
}
