package domain

import (
	"time"

	"github.com/sattis-studio/booking-web/pkg/types"
)

// WizardStep шаг мастера публичной записи
type WizardStep int

const (
	StepChooseService      WizardStep = 1
	StepChooseProfessional WizardStep = 2
	StepChooseDateTime     WizardStep = 3
	StepCustomerDetails    WizardStep = 4
	StepConfirmation       WizardStep = 5
)

// WizardSession состояние одного прохода мастера записи.
// Переходы только через методы: каждый метод проверяет, что текущий шаг
// допускает операцию, и сбрасывает выбор последующих шагов.
type WizardSession struct {
	ID             string
	Step           WizardStep
	ServiceID      string
	ProfessionalID string
	Date           string // YYYY-MM-DD
	Time           types.TimeString
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	AppointmentID  string // заполняется после успешного создания записи
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewWizardSession создает сессию на первом шаге
func NewWizardSession(id string, now time.Time) *WizardSession {
	return &WizardSession{
		ID:        id,
		Step:      StepChooseService,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SelectService фиксирует выбор услуги и переводит сессию на шаг выбора мастера.
// Повторный выбор услуги сбрасывает мастера, дату и время.
func (s *WizardSession) SelectService(serviceID string, now time.Time) bool {
	if s.Step == StepConfirmation {
		return false
	}
	s.ServiceID = serviceID
	s.ProfessionalID = ""
	s.Date = ""
	s.Time = ""
	s.Step = StepChooseProfessional
	s.UpdatedAt = now
	return true
}

// SelectProfessional фиксирует выбор мастера и переводит сессию на шаг выбора даты и времени
func (s *WizardSession) SelectProfessional(professionalID string, now time.Time) bool {
	if s.Step != StepChooseProfessional && s.Step != StepChooseDateTime && s.Step != StepCustomerDetails {
		return false
	}
	if s.ServiceID == "" {
		return false
	}
	s.ProfessionalID = professionalID
	s.Date = ""
	s.Time = ""
	s.Step = StepChooseDateTime
	s.UpdatedAt = now
	return true
}

// SelectDateTime фиксирует дату и слот и переводит сессию на шаг данных клиента
func (s *WizardSession) SelectDateTime(date string, slot types.TimeString, now time.Time) bool {
	if s.Step != StepChooseDateTime && s.Step != StepCustomerDetails {
		return false
	}
	if s.ServiceID == "" || s.ProfessionalID == "" {
		return false
	}
	s.Date = date
	s.Time = slot
	s.Step = StepCustomerDetails
	s.UpdatedAt = now
	return true
}

// SetCustomerDetails заполняет данные клиента на шаге 4
func (s *WizardSession) SetCustomerDetails(name, email, phone string, now time.Time) bool {
	if s.Step != StepCustomerDetails {
		return false
	}
	s.CustomerName = name
	s.CustomerEmail = email
	s.CustomerPhone = phone
	s.UpdatedAt = now
	return true
}

// Confirm переводит сессию на финальный шаг после создания записи
func (s *WizardSession) Confirm(appointmentID string, now time.Time) bool {
	if s.Step != StepCustomerDetails {
		return false
	}
	s.AppointmentID = appointmentID
	s.Step = StepConfirmation
	s.UpdatedAt = now
	return true
}

// Back возвращает сессию на предыдущий шаг.
// С финального шага возврата нет: новая запись начинается с новой сессии.
func (s *WizardSession) Back(now time.Time) bool {
	if s.Step <= StepChooseService || s.Step == StepConfirmation {
		return false
	}
	s.Step--
	s.UpdatedAt = now
	return true
}

// ReadyToSubmit проверяет, что все обязательные поля заполнены
func (s *WizardSession) ReadyToSubmit() bool {
	return s.Step == StepCustomerDetails &&
		s.ServiceID != "" &&
		s.ProfessionalID != "" &&
		s.Date != "" &&
		!s.Time.IsZero() &&
		s.CustomerName != "" &&
		s.CustomerEmail != "" &&
		s.CustomerPhone != ""
}
