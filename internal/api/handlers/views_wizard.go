package handlers

import wizardModels "github.com/sattis-studio/booking-web/internal/service/wizard/models"

// WizardSessionView HTTP модель состояния мастера записи
type WizardSessionView struct {
	ID             string `json:"id"`
	Step           int    `json:"step"`
	ServiceID      string `json:"serviceId,omitempty"`
	ProfessionalID string `json:"professionalId,omitempty"`
	Date           string `json:"date,omitempty"`
	Time           string `json:"time,omitempty"`
	CustomerName   string `json:"customerName,omitempty"`
	CustomerEmail  string `json:"customerEmail,omitempty"`
	CustomerPhone  string `json:"customerPhone,omitempty"`
	AppointmentID  string `json:"appointmentId,omitempty"`
}

// WizardStateResponse состояние сессии с данными для отображения текущего шага
type WizardStateResponse struct {
	Session       WizardSessionView  `json:"session"`
	Services      []ServiceView      `json:"services"`
	Professionals []ProfessionalView `json:"professionals,omitempty"`
}

// FromWizardSession конвертирует снимок сессии в HTTP модель
func FromWizardSession(s *wizardModels.SessionState) WizardSessionView {
	return WizardSessionView{
		ID:             s.ID,
		Step:           int(s.Step),
		ServiceID:      s.ServiceID,
		ProfessionalID: s.ProfessionalID,
		Date:           s.Date,
		Time:           s.Time.String(),
		CustomerName:   s.CustomerName,
		CustomerEmail:  s.CustomerEmail,
		CustomerPhone:  s.CustomerPhone,
		AppointmentID:  s.AppointmentID,
	}
}

// FromWizardState конвертирует ответ сервиса мастера в HTTP модель
func FromWizardState(resp *wizardModels.SessionResponse) *WizardStateResponse {
	return &WizardStateResponse{
		Session:       FromWizardSession(&resp.Session),
		Services:      FromDomainServices(resp.Services),
		Professionals: FromDomainProfessionals(resp.Professionals),
	}
}
