package select_datetime

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sattis-studio/booking-web/internal/api/handlers"
	"github.com/sattis-studio/booking-web/internal/service/wizard"
	"github.com/sattis-studio/booking-web/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgSessionNotFound    = "сессия записи не найдена или истекла"
	msgWrongStep          = "операция недоступна на текущем шаге"
	msgTimeNotAvailable   = "выбранное время недоступно"
)

type Handler struct {
	service WizardService
	logger  Logger
}

func NewHandler(service WizardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/{sessionId}/datetime
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectDateTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/{id}/datetime - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slot, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		h.logger.Warn("POST /wizard/{id}/datetime - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.SelectDateTime(r.Context(), sessionID, req.Date, slot)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/{id}/datetime - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrTimeNotAvailable):
			h.logger.Warn("POST /wizard/{id}/datetime - Time not available: session_id=%s, date=%s, time=%s",
				sessionID, req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgTimeNotAvailable)

		case errors.Is(err, wizard.ErrWrongStep):
			h.logger.Warn("POST /wizard/{id}/datetime - Wrong step: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgWrongStep)

		case errors.Is(err, wizard.ErrInvalidInput):
			h.logger.Warn("POST /wizard/{id}/datetime - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /wizard/{id}/datetime - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/{id}/datetime - Slot selected: session_id=%s, date=%s, time=%s",
		sessionID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardState(result))
}
