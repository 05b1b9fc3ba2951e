package wizard_back

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sattis-studio/booking-web/internal/api/handlers"
	"github.com/sattis-studio/booking-web/internal/service/wizard"
)

const (
	msgSessionNotFound = "сессия записи не найдена или истекла"
	msgCannotGoBack    = "возврат с этого шага невозможен"
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

// Handle POST /api/v1/wizard/{sessionId}/back
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.service.Back(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/{id}/back - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrCannotGoBack):
			h.logger.Warn("POST /wizard/{id}/back - Cannot go back: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgCannotGoBack)

		case errors.Is(err, wizard.ErrInvalidInput):
			h.logger.Warn("POST /wizard/{id}/back - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("POST /wizard/{id}/back - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/{id}/back - Step back: session_id=%s, step=%d", sessionID, result.Session.Step)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardState(result))
}
