package create_appointment

import "github.com/sattis-studio/booking-web/internal/domain"

// Request модель запроса подтверждения записи с шага данных клиента
type Request struct {
	SessionID     string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

// Response модель ответа: сессия на финальном шаге и созданная запись
type Response struct {
	Session     domain.WizardSession
	Appointment domain.Appointment
}
