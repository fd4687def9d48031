package check_min_duration

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ApplicationRounds/internal/api/handlers"
	checkMinDuration "github.com/m04kA/SMC-ApplicationRounds/internal/usecase/check_min_duration"
)

const (
	msgInvalidApplicationID = "некорректный ID заявки"
	msgInvalidQuery         = "некорректная политика или приоритет, ожидается policy=sum|longest и priority=primary|secondary"
	msgApplicationNotFound  = "заявка не найдена"
)

type Handler struct {
	useCase CheckMinDurationUseCase
	logger  Logger
}

func NewHandler(useCase CheckMinDurationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/applications/{applicationId}/duration-check
// Query params: policy (optional, sum|longest), priority (optional, primary|secondary|300|200)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	applicationID, err := strconv.ParseInt(mux.Vars(r)["applicationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /applications/{id}/duration-check - Invalid application ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApplicationID)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(applicationID, query.Get("policy"), query.Get("priority"))
	if err != nil {
		h.logger.Warn("GET /applications/{id}/duration-check - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkMinDuration.ErrInvalidInput):
			h.logger.Warn("GET /applications/{id}/duration-check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		case errors.Is(err, checkMinDuration.ErrApplicationNotFound):
			h.logger.Warn("GET /applications/{id}/duration-check - Application not found: application_id=%d", applicationID)
			handlers.RespondNotFound(w, msgApplicationNotFound)

		default:
			h.logger.Error("GET /applications/{id}/duration-check - Failed to check: application_id=%d, error=%v", applicationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /applications/{id}/duration-check - Checked: application_id=%d, under_minimum=%d",
		applicationID, len(result.UnderMinimum))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
