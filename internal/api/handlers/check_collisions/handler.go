package check_collisions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ApplicationRounds/internal/api/handlers"
	checkCollisions "github.com/m04kA/SMC-ApplicationRounds/internal/usecase/check_collisions"
)

const (
	msgInvalidUnitID           = "некорректный ID помещения"
	msgInvalidRequestBody      = "некорректное тело запроса"
	msgInvalidRequest          = "некорректные данные запроса"
	msgTooManyCandidates       = "слишком много бронирований для проверки"
	msgReservationUnitNotFound = "помещение не найдено"
)

type Handler struct {
	useCase CheckCollisionsUseCase
	logger  Logger
}

func NewHandler(useCase CheckCollisionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservation-units/{unitId}/collisions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	unitID, err := strconv.ParseInt(mux.Vars(r)["unitId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservation-units/{id}/collisions - Invalid unit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnitID)
		return
	}

	var req CheckCollisionsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservation-units/{id}/collisions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(unitID)
	if err != nil {
		h.logger.Warn("POST /reservation-units/{id}/collisions - Invalid request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkCollisions.ErrInvalidInput):
			h.logger.Warn("POST /reservation-units/{id}/collisions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, checkCollisions.ErrTooManyCandidates):
			h.logger.Warn("POST /reservation-units/{id}/collisions - Too many candidates: unit_id=%d, error=%v", unitID, err)
			handlers.RespondUnprocessable(w, msgTooManyCandidates)

		case errors.Is(err, checkCollisions.ErrReservationUnitNotFound):
			h.logger.Warn("POST /reservation-units/{id}/collisions - Unit not found: unit_id=%d", unitID)
			handlers.RespondNotFound(w, msgReservationUnitNotFound)

		default:
			h.logger.Error("POST /reservation-units/{id}/collisions - Failed to check: unit_id=%d, error=%v", unitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservation-units/{id}/collisions - Checked: unit_id=%d, candidates=%d, collisions=%d",
		unitID, result.CandidatesChecked, len(result.Collisions))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
