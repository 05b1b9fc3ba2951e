package get_wizard_times

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sattis-studio/booking-web/internal/api/handlers"
	"github.com/sattis-studio/booking-web/internal/service/wizard"
)

const (
	msgSessionNotFound = "сессия записи не найдена или истекла"
	msgWrongStep       = "сначала выберите услугу и мастера"
	msgInvalidParams   = "некорректные параметры запроса"
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

// Handle GET /api/v1/wizard/{sessionId}/times
// Query params: date (YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	date := r.URL.Query().Get("date")

	result, err := h.service.AvailableTimes(r.Context(), sessionID, date)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("GET /wizard/{id}/times - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrWrongStep):
			h.logger.Warn("GET /wizard/{id}/times - Wrong step: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgWrongStep)

		case errors.Is(err, wizard.ErrInvalidInput):
			h.logger.Warn("GET /wizard/{id}/times - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /wizard/{id}/times - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /wizard/{id}/times - Times retrieved: session_id=%s, date=%s, count=%d",
		sessionID, date, len(result.Times))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
