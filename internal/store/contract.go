package store

import (
	"context"

	"github.com/sattis-studio/booking-web/internal/domain"
)

// BackendClient интерфейс клиента backend API, используемый хранилищем
type BackendClient interface {
	ListAppointments(ctx context.Context, token string, filter domain.AppointmentsFilter) ([]domain.Appointment, error)
	ListServices(ctx context.Context, token string) ([]domain.Service, error)
	ListProfessionals(ctx context.Context, token string) ([]domain.Professional, error)
	ListCategories(ctx context.Context, token string) ([]domain.Category, error)
	GetCustomerMissed(ctx context.Context, token, email string) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
