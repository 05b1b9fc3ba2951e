package reset_missed

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sattis-studio/booking-web/internal/api/handlers"
	"github.com/sattis-studio/booking-web/internal/api/middleware"
	"github.com/sattis-studio/booking-web/internal/service/appointments"
)

const (
	msgMissingToken  = "отсутствует токен авторизации"
	msgInvalidEmail  = "некорректный email клиента"
	msgTokenRejected = "токен авторизации отклонен"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/customers/{email}/reset-missed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("PATCH /customers/{email}/reset-missed - Missing token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	if err := h.service.ResetMissed(r.Context(), token, email); err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /customers/{email}/reset-missed - Invalid email: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, appointments.ErrUnauthorized):
			h.logger.Warn("PATCH /customers/{email}/reset-missed - Token rejected")
			handlers.RespondUnauthorized(w, msgTokenRejected)

		default:
			h.logger.Error("PATCH /customers/{email}/reset-missed - Failed: email=%s, error=%v", email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /customers/{email}/reset-missed - Reset: email=%s", email)
	w.WriteHeader(http.StatusNoContent)
}
