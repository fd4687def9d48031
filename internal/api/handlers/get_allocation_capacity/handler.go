package get_allocation_capacity

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ApplicationRounds/internal/api/handlers"
	getAllocationCapacity "github.com/m04kA/SMC-ApplicationRounds/internal/usecase/get_allocation_capacity"
)

const (
	msgInvalidRoundID = "некорректный ID раунда заявок"
	msgInvalidUnitID  = "некорректный ID помещения"
	msgRoundNotFound  = "раунд заявок не найден"
)

type Handler struct {
	useCase GetAllocationCapacityUseCase
	logger  Logger
}

func NewHandler(useCase GetAllocationCapacityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/application-rounds/{roundId}/capacity
// Query params: reservationUnitId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roundID, err := strconv.ParseInt(mux.Vars(r)["roundId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /application-rounds/{id}/capacity - Invalid round ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoundID)
		return
	}

	req := &getAllocationCapacity.Request{RoundID: roundID}

	if unitStr := r.URL.Query().Get("reservationUnitId"); unitStr != "" {
		unitID, err := strconv.ParseInt(unitStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /application-rounds/{id}/capacity - Invalid reservationUnitId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidUnitID)
			return
		}
		req.ReservationUnitID = &unitID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAllocationCapacity.ErrInvalidInput):
			h.logger.Warn("GET /application-rounds/{id}/capacity - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRoundID)

		case errors.Is(err, getAllocationCapacity.ErrRoundNotFound):
			h.logger.Warn("GET /application-rounds/{id}/capacity - Round not found: round_id=%d", roundID)
			handlers.RespondNotFound(w, msgRoundNotFound)

		default:
			h.logger.Error("GET /application-rounds/{id}/capacity - Failed to get capacity: round_id=%d, error=%v", roundID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /application-rounds/{id}/capacity - Success: round_id=%d, percentage=%d",
		roundID, result.Capacity.Percentage)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
