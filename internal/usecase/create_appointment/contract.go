package create_appointment

import (
	"context"
	"time"

	"github.com/sattis-studio/booking-web/internal/domain"
	"github.com/sattis-studio/booking-web/internal/integrations/salonapi"
)

// SessionRepository интерфейс репозитория сессий мастера записи
type SessionRepository interface {
	Get(id string) (*domain.WizardSession, error)
	Save(session *domain.WizardSession)
}

// BackendClient интерфейс клиента backend API
type BackendClient interface {
	CreateAppointment(ctx context.Context, create *salonapi.CreateAppointmentRequest) (*domain.Appointment, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
