package update_appointment_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sattis-studio/booking-web/internal/api/handlers"
	"github.com/sattis-studio/booking-web/internal/api/middleware"
	"github.com/sattis-studio/booking-web/internal/domain"
	"github.com/sattis-studio/booking-web/internal/service/appointments"
	appointmentsModels "github.com/sattis-studio/booking-web/internal/service/appointments/models"
)

const (
	msgMissingToken         = "отсутствует токен авторизации"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidStatus        = "некорректный статус записи"
	msgAppointmentNotFound  = "запись не найдена"
	msgTransitionNotAllowed = "смена статуса недоступна для этой записи"
	msgTokenRejected        = "токен авторизации отклонен"
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

// Handle PATCH /api/v1/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{id}/status - Missing token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), token, &appointmentsModels.UpdateStatusRequest{
		AppointmentID: appointmentID,
		Status:        domain.AppointmentStatus(req.Status),
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/status - Not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid status: %s", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrTransitionNotAllowed):
			h.logger.Warn("PATCH /appointments/{id}/status - Transition not allowed: appointment_id=%s, status=%s",
				appointmentID, req.Status)
			handlers.RespondError(w, http.StatusConflict, msgTransitionNotAllowed)

		case errors.Is(err, appointments.ErrUnauthorized):
			h.logger.Warn("PATCH /appointments/{id}/status - Token rejected")
			handlers.RespondUnauthorized(w, msgTokenRejected)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /appointments/{id}/status - Failed: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/status - Updated: appointment_id=%s, status=%s",
		appointmentID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainAppointment(&result.Appointment, result.CustomerMissed))
}
