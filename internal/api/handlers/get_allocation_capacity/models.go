package get_allocation_capacity

import getAllocationCapacity "github.com/m04kA/SMC-ApplicationRounds/internal/usecase/get_allocation_capacity"

// CapacityResponse HTTP response model
type CapacityResponse struct {
	RoundID           int64   `json:"roundId"`
	RoundName         string  `json:"roundName"`
	ReservationUnitID *int64  `json:"reservationUnitId,omitempty"`
	Percentage        int     `json:"percentage"`
	Volume            int     `json:"volume"`
	Hours             float64 `json:"hours"`
	DemandPercentage  int     `json:"demandPercentage"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAllocationCapacity.Response) *CapacityResponse {
	return &CapacityResponse{
		RoundID:           resp.RoundID,
		RoundName:         resp.RoundName,
		ReservationUnitID: resp.ReservationUnitID,
		Percentage:        resp.Capacity.Percentage,
		Volume:            resp.Capacity.Volume,
		Hours:             resp.Capacity.Hours,
		DemandPercentage:  resp.Capacity.DemandPercentage,
	}
}
