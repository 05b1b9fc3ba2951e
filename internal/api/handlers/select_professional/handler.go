package select_professional

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sattis-studio/booking-web/internal/api/handlers"
	"github.com/sattis-studio/booking-web/internal/service/wizard"
)

const (
	msgInvalidRequestBody      = "некорректное тело запроса"
	msgSessionNotFound         = "сессия записи не найдена или истекла"
	msgProfessionalNotFound    = "мастер не найден"
	msgProfessionalUnavailable = "мастер не оказывает выбранную услугу"
	msgWrongStep               = "операция недоступна на текущем шаге"
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

// Handle POST /api/v1/wizard/{sessionId}/professional
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/{id}/professional - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SelectProfessional(r.Context(), sessionID, req.ProfessionalID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/{id}/professional - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrProfessionalNotFound):
			h.logger.Warn("POST /wizard/{id}/professional - Professional not found: session_id=%s, professional_id=%s",
				sessionID, req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, wizard.ErrProfessionalUnavailable):
			h.logger.Warn("POST /wizard/{id}/professional - Professional unavailable: session_id=%s, professional_id=%s",
				sessionID, req.ProfessionalID)
			handlers.RespondBadRequest(w, msgProfessionalUnavailable)

		case errors.Is(err, wizard.ErrWrongStep):
			h.logger.Warn("POST /wizard/{id}/professional - Wrong step: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgWrongStep)

		case errors.Is(err, wizard.ErrInvalidInput):
			h.logger.Warn("POST /wizard/{id}/professional - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /wizard/{id}/professional - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/{id}/professional - Professional selected: session_id=%s, professional_id=%s",
		sessionID, req.ProfessionalID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardState(result))
}
