package build_schedule_grid

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ApplicationRounds/internal/api/handlers"
	buildScheduleGrid "github.com/m04kA/SMC-ApplicationRounds/internal/usecase/build_schedule_grid"
	"github.com/m04kA/SMC-ApplicationRounds/pkg/ptr"
)

const (
	msgInvalidSectionID    = "некорректный ID секции"
	msgInvalidUnitID       = "некорректный ID помещения"
	msgInvalidRequest      = "некорректные параметры запроса"
	msgSectionNotFound     = "секция заявки не найдена"
	msgReservationUnitGone = "помещение не найдено"
)

type Handler struct {
	useCase BuildScheduleGridUseCase
	logger  Logger
}

func NewHandler(useCase BuildScheduleGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/application-sections/{sectionId}/grid
// Query params: reservationUnitId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sectionID, err := strconv.ParseInt(mux.Vars(r)["sectionId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /application-sections/{id}/grid - Invalid section ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSectionID)
		return
	}

	useCaseReq := &buildScheduleGrid.Request{SectionID: sectionID}

	// Извлекаем reservationUnitId из query параметров
	if unitIDStr := r.URL.Query().Get("reservationUnitId"); unitIDStr != "" {
		unitID, err := strconv.ParseInt(unitIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /application-sections/{id}/grid - Invalid reservation unit ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidUnitID)
			return
		}
		useCaseReq.ReservationUnitID = ptr.Ptr(unitID)
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, buildScheduleGrid.ErrInvalidInput):
			h.logger.Warn("GET /application-sections/{id}/grid - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, buildScheduleGrid.ErrSectionNotFound):
			h.logger.Warn("GET /application-sections/{id}/grid - Section not found: section_id=%d", sectionID)
			handlers.RespondNotFound(w, msgSectionNotFound)

		case errors.Is(err, buildScheduleGrid.ErrReservationUnitNotFound):
			h.logger.Warn("GET /application-sections/{id}/grid - Reservation unit not found: section_id=%d", sectionID)
			handlers.RespondNotFound(w, msgReservationUnitGone)

		default:
			h.logger.Error("GET /application-sections/{id}/grid - Failed to build grid: section_id=%d, error=%v", sectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /application-sections/{id}/grid - Grid built: section_id=%d", sectionID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
