package submit_appointment

import (
	"github.com/sattis-studio/booking-web/internal/api/handlers"
	wizardModels "github.com/sattis-studio/booking-web/internal/service/wizard/models"
	createAppointment "github.com/sattis-studio/booking-web/internal/usecase/create_appointment"
)

// SubmitRequest HTTP request model
type SubmitRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
}

// SubmitResponse HTTP response model
type SubmitResponse struct {
	Session     handlers.WizardSessionView `json:"session"`
	Appointment handlers.AppointmentView   `json:"appointment"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitRequest) ToUseCaseRequest(sessionID string) *createAppointment.Request {
	return &createAppointment.Request{
		SessionID:     sessionID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *SubmitResponse {
	state := wizardModels.FromDomainSession(&resp.Session)
	return &SubmitResponse{
		Session:     handlers.FromWizardSession(&state),
		Appointment: handlers.FromDomainAppointment(&resp.Appointment, false),
	}
}
