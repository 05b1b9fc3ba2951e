package submit_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sattis-studio/booking-web/internal/api/handlers"
	createAppointment "github.com/sattis-studio/booking-web/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCustomer    = "некорректные данные клиента"
	msgSessionNotFound    = "сессия записи не найдена или истекла"
	msgWrongStep          = "операция недоступна на текущем шаге"
	msgIncompleteSession  = "не все шаги записи заполнены"
	msgCreateRejected     = "не удалось создать запись, попробуйте другое время"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/{sessionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SubmitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/{id}/submit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/{id}/submit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /wizard/{id}/submit - Invalid customer data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCustomer)

		case errors.Is(err, createAppointment.ErrWrongStep):
			h.logger.Warn("POST /wizard/{id}/submit - Wrong step: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgWrongStep)

		case errors.Is(err, createAppointment.ErrIncompleteSession):
			h.logger.Warn("POST /wizard/{id}/submit - Incomplete session: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgIncompleteSession)

		case errors.Is(err, createAppointment.ErrCreateRejected):
			h.logger.Warn("POST /wizard/{id}/submit - Backend rejected: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgCreateRejected)

		default:
			h.logger.Error("POST /wizard/{id}/submit - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/{id}/submit - Appointment created: session_id=%s, appointment_id=%s",
		sessionID, result.Appointment.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
