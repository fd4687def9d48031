package save_schedule_grid

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
	saveScheduleGrid "github.com/m04kA/SMC-ApplicationRounds/internal/usecase/save_schedule_grid"
)

var errDayCount = errors.New("grid must contain exactly 7 days")

// CellRequest ячейка сетки; доступность на запись не принимается
type CellRequest struct {
	Hour     int `json:"hour"`
	Priority int `json:"priority"` // 0 | 200 | 300
}

// SaveGridRequest HTTP request model
type SaveGridRequest struct {
	Days [][]CellRequest `json:"days"` // 7 дней, 0 = понедельник
}

// RangeResponse сохранённый интервал
type RangeResponse struct {
	Day       int    `json:"day"`
	BeginTime string `json:"beginTime"` // "HH:MM"
	EndTime   string `json:"endTime"`   // "HH:MM", "00:00" = конец дня
	Priority  int    `json:"priority"`
}

// SaveGridResponse HTTP response model
type SaveGridResponse struct {
	SectionID     int64           `json:"sectionId"`
	Ranges        []RangeResponse `json:"ranges"`
	Policy        string          `json:"policy"`
	SelectedHours int             `json:"selectedHours"`
	UnderMinimum  bool            `json:"underMinimum"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SaveGridRequest) ToUseCaseRequest(sectionID, userID int64) (*saveScheduleGrid.Request, error) {
	if len(r.Days) != domain.DaysInWeek {
		return nil, fmt.Errorf("%w: got %d", errDayCount, len(r.Days))
	}

	var grid domain.Grid
	for day, cells := range r.Days {
		grid[day] = make([]domain.Cell, len(cells))
		for i, c := range cells {
			grid[day][i] = domain.Cell{
				Hour:     c.Hour,
				Label:    fmt.Sprintf("%02d", c.Hour),
				Priority: domain.Priority(c.Priority),
			}
		}
	}

	return &saveScheduleGrid.Request{
		SectionID: sectionID,
		UserID:    userID,
		Grid:      grid,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *saveScheduleGrid.Response) *SaveGridResponse {
	ranges := make([]RangeResponse, len(resp.Ranges))
	for i, tr := range resp.Ranges {
		ranges[i] = RangeResponse{
			Day:       tr.Day,
			BeginTime: tr.BeginTime.String(),
			EndTime:   tr.EndTime.String(),
			Priority:  int(tr.Priority),
		}
	}

	return &SaveGridResponse{
		SectionID:     resp.SectionID,
		Ranges:        ranges,
		Policy:        string(resp.Policy),
		SelectedHours: resp.SelectedHours,
		UnderMinimum:  resp.UnderMinimum,
	}
}
