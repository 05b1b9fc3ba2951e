package models

import (
	"github.com/sattis-studio/booking-web/internal/domain"
	"github.com/sattis-studio/booking-web/pkg/types"
)

// SessionState снимок сессии мастера для отдачи наружу
type SessionState struct {
	ID             string
	Step           domain.WizardStep
	ServiceID      string
	ProfessionalID string
	Date           string
	Time           types.TimeString
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	AppointmentID  string
}

// FromDomainSession конвертирует доменную сессию в снимок
func FromDomainSession(s *domain.WizardSession) SessionState {
	return SessionState{
		ID:             s.ID,
		Step:           s.Step,
		ServiceID:      s.ServiceID,
		ProfessionalID: s.ProfessionalID,
		Date:           s.Date,
		Time:           s.Time,
		CustomerName:   s.CustomerName,
		CustomerEmail:  s.CustomerEmail,
		CustomerPhone:  s.CustomerPhone,
		AppointmentID:  s.AppointmentID,
	}
}

// StartResponse ответ создания сессии: первый шаг и список услуг
type StartResponse struct {
	Session  SessionState
	Services []domain.Service
}

// SessionResponse текущее состояние сессии с данными для отображения шага:
// Professionals заполнен пересечением по выбранной услуге
type SessionResponse struct {
	Session       SessionState
	Services      []domain.Service
	Professionals []domain.Professional
}

// TimesResponse свободные слоты на дату для текущего выбора сессии
type TimesResponse struct {
	Date  string
	Times []types.TimeString
}
