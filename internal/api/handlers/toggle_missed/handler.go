package toggle_missed

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sattis-studio/booking-web/internal/api/handlers"
	"github.com/sattis-studio/booking-web/internal/api/middleware"
	"github.com/sattis-studio/booking-web/internal/service/appointments"
	appointmentsModels "github.com/sattis-studio/booking-web/internal/service/appointments/models"
)

const (
	msgMissingToken        = "отсутствует токен авторизации"
	msgAppointmentNotFound = "запись не найдена"
	msgTokenRejected       = "токен авторизации отклонен"
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

// Handle PATCH /api/v1/appointments/{appointmentId}/missed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{id}/missed - Missing token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	result, err := h.service.ToggleMissed(r.Context(), token, &appointmentsModels.ToggleMissedRequest{
		AppointmentID: appointmentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/missed - Not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrUnauthorized):
			h.logger.Warn("PATCH /appointments/{id}/missed - Token rejected")
			handlers.RespondUnauthorized(w, msgTokenRejected)

		default:
			h.logger.Error("PATCH /appointments/{id}/missed - Failed: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/missed - Toggled: appointment_id=%s, is_missed=%t",
		appointmentID, result.Appointment.IsMissed)
	handlers.RespondJSON(w, http.StatusOK,
		handlers.FromDomainAppointment(&result.Appointment, result.CustomerMissed))
}
