package save_schedule_grid

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ApplicationRounds/internal/api/handlers"
	"github.com/m04kA/SMC-ApplicationRounds/internal/api/middleware"
	saveScheduleGrid "github.com/m04kA/SMC-ApplicationRounds/internal/usecase/save_schedule_grid"
)

const (
	msgInvalidSectionID   = "некорректный ID секции"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDayCount    = "сетка должна содержать ровно 7 дней"
	msgInvalidGrid        = "сетка содержит часы вне окна или неизвестный приоритет"
	msgInvalidRequest     = "некорректные данные запроса"
	msgMissingUserID      = "не указан пользователь"
	msgSectionNotFound    = "секция заявки не найдена"
)

type Handler struct {
	useCase SaveScheduleGridUseCase
	logger  Logger
}

func NewHandler(useCase SaveScheduleGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/application-sections/{sectionId}/grid
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sectionID, err := strconv.ParseInt(mux.Vars(r)["sectionId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /application-sections/{id}/grid - Invalid section ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSectionID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /application-sections/{id}/grid - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SaveGridRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /application-sections/{id}/grid - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(sectionID, userID)
	if err != nil {
		h.logger.Warn("PUT /application-sections/{id}/grid - Invalid grid: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayCount)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, saveScheduleGrid.ErrInvalidGrid):
			h.logger.Warn("PUT /application-sections/{id}/grid - Invalid grid: section_id=%d, error=%v", sectionID, err)
			handlers.RespondBadRequest(w, msgInvalidGrid)

		case errors.Is(err, saveScheduleGrid.ErrInvalidInput):
			h.logger.Warn("PUT /application-sections/{id}/grid - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, saveScheduleGrid.ErrSectionNotFound):
			h.logger.Warn("PUT /application-sections/{id}/grid - Section not found: section_id=%d", sectionID)
			handlers.RespondNotFound(w, msgSectionNotFound)

		default:
			h.logger.Error("PUT /application-sections/{id}/grid - Failed to save grid: section_id=%d, user_id=%d, error=%v",
				sectionID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /application-sections/{id}/grid - Grid saved: section_id=%d, user_id=%d, ranges=%d",
		sectionID, userID, len(result.Ranges))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
