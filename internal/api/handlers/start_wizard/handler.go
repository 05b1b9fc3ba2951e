package start_wizard

import (
	"net/http"

	"github.com/sattis-studio/booking-web/internal/api/handlers"
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

// Handle POST /api/v1/wizard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Start(r.Context())
	if err != nil {
		h.logger.Error("POST /wizard - Failed to start session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := StartResponse{
		Session:  handlers.FromWizardSession(&result.Session),
		Services: handlers.FromDomainServices(result.Services),
	}

	h.logger.Info("POST /wizard - Session started: session_id=%s", result.Session.ID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
