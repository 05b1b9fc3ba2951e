package appointments

import (
	"context"

	"github.com/sattis-studio/booking-web/internal/domain"
)

// AppointmentsStore разделяемое хранилище записей.
// Fetch* методы сбрасывают стухшие ответы по счётчику поколений,
// остальные работают по локальному снимку.
type AppointmentsStore interface {
	FetchAppointments(ctx context.Context, token string, filter domain.AppointmentsFilter) error
	Appointments() []domain.Appointment
	CustomerMissed(email string) bool
	FindAppointment(id string) (domain.Appointment, error)
	UpdateAppointmentStatus(id string, status domain.AppointmentStatus) error
	SetAppointmentMissed(id string, missed bool) (domain.Appointment, error)
	ClearCustomerMissed(email string)
}

// BackendClient интерфейс backend для мутаций записей
type BackendClient interface {
	UpdateAppointmentStatus(ctx context.Context, token, id string, status domain.AppointmentStatus) error
	ToggleMissed(ctx context.Context, token, id string) error
	ResetMissedCount(ctx context.Context, token, email string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
