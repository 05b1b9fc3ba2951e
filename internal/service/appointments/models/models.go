package models

import "github.com/sattis-studio/booking-web/internal/domain"

// ListRequest параметры списка записей для дашборда.
// Фильтры комбинируются по AND, пустые не применяются.
type ListRequest struct {
	Date           string
	ServiceID      string
	ProfessionalID string
	Missed         *bool
	Limit          int // выросшее окно "показать ещё", 0 означает окно по умолчанию
}

// ListResponse окно отфильтрованного списка и полный размер для "показать ещё".
// CustomerMissed содержит агрегат неявок по email каждого клиента из окна.
type ListResponse struct {
	Appointments   []domain.Appointment
	Total          int
	Limit          int
	CustomerMissed map[string]bool
}

// UpdateStatusRequest запрос смены статуса записи
type UpdateStatusRequest struct {
	AppointmentID string
	Status        domain.AppointmentStatus
}

// StatusResponse запись после смены статуса и агрегат неявок её клиента
type StatusResponse struct {
	Appointment    domain.Appointment
	CustomerMissed bool
}

// ToggleMissedRequest запрос переключения флага неявки
type ToggleMissedRequest struct {
	AppointmentID string
}

// MissedResponse запись после переключения флага и агрегат по клиенту
type MissedResponse struct {
	Appointment    domain.Appointment
	CustomerMissed bool
}
