package check_collisions

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
	checkCollisions "github.com/m04kA/SMC-ApplicationRounds/internal/usecase/check_collisions"
	"github.com/m04kA/SMC-ApplicationRounds/pkg/types"
)

var errNothingToCheck = errors.New("candidates or series required")

// CandidateRequest отдельное бронирование для проверки
type CandidateRequest struct {
	Begin time.Time `json:"begin"` // RFC3339
	End   time.Time `json:"end"`   // RFC3339
}

// RangeRequest недельный интервал серии
type RangeRequest struct {
	Day       int    `json:"day"`       // 0 = понедельник
	BeginTime string `json:"beginTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM, 00:00 = конец дня
	Priority  int    `json:"priority"`
}

// SeriesRequest недельное расписание на период
type SeriesRequest struct {
	Ranges      []RangeRequest `json:"ranges"`
	PeriodBegin string         `json:"periodBegin"` // YYYY-MM-DD
	PeriodEnd   string         `json:"periodEnd"`   // YYYY-MM-DD
}

// CheckCollisionsRequest HTTP request model
type CheckCollisionsRequest struct {
	Candidates     []CandidateRequest `json:"candidates"`
	Series         *SeriesRequest     `json:"series,omitempty"`
	IgnoreSeriesID *int64             `json:"ignoreSeriesId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *CheckCollisionsRequest) ToUseCaseRequest(unitID int64) (*checkCollisions.Request, error) {
	if len(r.Candidates) == 0 && r.Series == nil {
		return nil, errNothingToCheck
	}

	req := &checkCollisions.Request{
		ReservationUnitID: unitID,
		Candidates:        make([]checkCollisions.Candidate, len(r.Candidates)),
		IgnoreSeriesID:    r.IgnoreSeriesID,
	}
	for i, c := range r.Candidates {
		req.Candidates[i] = checkCollisions.Candidate{Begin: c.Begin, End: c.End}
	}

	if r.Series != nil {
		begin, err := time.Parse(domain.DateFormat, r.Series.PeriodBegin)
		if err != nil {
			return nil, fmt.Errorf("periodBegin: %w", err)
		}
		end, err := time.Parse(domain.DateFormat, r.Series.PeriodEnd)
		if err != nil {
			return nil, fmt.Errorf("periodEnd: %w", err)
		}

		ranges := make([]domain.TimeRange, len(r.Series.Ranges))
		for i, rr := range r.Series.Ranges {
			ranges[i] = domain.TimeRange{
				Day:       rr.Day,
				BeginTime: types.TimeString(rr.BeginTime),
				EndTime:   types.TimeString(rr.EndTime),
				Priority:  domain.Priority(rr.Priority),
			}
		}

		req.Series = &checkCollisions.Series{
			Ranges: ranges,
			Period: domain.Period{Begin: begin, End: end},
		}
	}

	return req, nil
}

// CollisionResponse найденное пересечение
type CollisionResponse struct {
	CandidateIndex   int       `json:"candidateIndex"`
	CandidateBegin   time.Time `json:"candidateBegin"`
	CandidateEnd     time.Time `json:"candidateEnd"`
	ReservationID    int64     `json:"reservationId"`
	ReservationBegin time.Time `json:"reservationBegin"`
	ReservationEnd   time.Time `json:"reservationEnd"`
	ReservationType  string    `json:"reservationType"`
}

// CheckCollisionsResponse HTTP response model
type CheckCollisionsResponse struct {
	ReservationUnitID int64               `json:"reservationUnitId"`
	CandidatesChecked int                 `json:"candidatesChecked"`
	HasCollisions     bool                `json:"hasCollisions"`
	Collisions        []CollisionResponse `json:"collisions"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkCollisions.Response) *CheckCollisionsResponse {
	collisions := make([]CollisionResponse, len(resp.Collisions))
	for i, c := range resp.Collisions {
		collisions[i] = CollisionResponse{
			CandidateIndex:   c.CandidateIndex,
			CandidateBegin:   c.CandidateBegin,
			CandidateEnd:     c.CandidateEnd,
			ReservationID:    c.ReservationID,
			ReservationBegin: c.ReservationBegin,
			ReservationEnd:   c.ReservationEnd,
			ReservationType:  string(c.ReservationType),
		}
	}

	return &CheckCollisionsResponse{
		ReservationUnitID: resp.ReservationUnitID,
		CandidatesChecked: resp.CandidatesChecked,
		HasCollisions:     len(collisions) > 0,
		Collisions:        collisions,
	}
}
