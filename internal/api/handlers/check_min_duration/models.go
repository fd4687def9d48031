package check_min_duration

import (
	"fmt"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
	checkMinDuration "github.com/m04kA/SMC-ApplicationRounds/internal/usecase/check_min_duration"
	"github.com/m04kA/SMC-ApplicationRounds/pkg/ptr"
)

// SectionResponse результат по секции
type SectionResponse struct {
	SectionID          int64  `json:"sectionId"`
	Name               string `json:"name"`
	MinDurationSeconds int64  `json:"minDurationSeconds"`
	SelectedHours      int    `json:"selectedHours"`
	UnderMinimum       bool   `json:"underMinimum"`
}

// DurationCheckResponse HTTP response model
type DurationCheckResponse struct {
	ApplicationID int64             `json:"applicationId"`
	Policy        string            `json:"policy"`
	Priority      int               `json:"priority"`
	Sections      []SectionResponse `json:"sections"`
	UnderMinimum  []int             `json:"underMinimum"` // индексы секций
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(applicationID int64, policyStr, priorityStr string) (*checkMinDuration.Request, error) {
	req := &checkMinDuration.Request{ApplicationID: applicationID}

	if policyStr != "" {
		policy, err := domain.ParseAggregationPolicy(policyStr)
		if err != nil {
			return nil, err
		}
		req.Policy = ptr.Ptr(policy)
	}

	priority, err := domain.ParsePriority(priorityStr)
	if err != nil {
		return nil, fmt.Errorf("priority: %w", err)
	}
	req.Priority = priority

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkMinDuration.Response) *DurationCheckResponse {
	sections := make([]SectionResponse, len(resp.Sections))
	for i, s := range resp.Sections {
		sections[i] = SectionResponse{
			SectionID:          s.SectionID,
			Name:               s.Name,
			MinDurationSeconds: s.MinDurationSeconds,
			SelectedHours:      s.SelectedHours,
			UnderMinimum:       s.UnderMinimum,
		}
	}

	return &DurationCheckResponse{
		ApplicationID: resp.ApplicationID,
		Policy:        string(resp.Policy),
		Priority:      int(resp.Priority),
		Sections:      sections,
		UnderMinimum:  resp.UnderMinimum,
	}
}
