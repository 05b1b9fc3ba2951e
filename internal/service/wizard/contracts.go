package wizard

import (
	"context"
	"time"

	"github.com/sattis-studio/booking-web/internal/domain"
	getAvailableTimes "github.com/sattis-studio/booking-web/internal/usecase/get_available_times"
)

// SessionRepository интерфейс репозитория сессий мастера записи
type SessionRepository interface {
	Get(id string) (*domain.WizardSession, error)
	Save(session *domain.WizardSession)
	Delete(id string)
}

// Catalog источник услуг и мастеров (разделяемое хранилище)
type Catalog interface {
	Services() []domain.Service
	Professionals() []domain.Professional
	FetchServicesAndProfessionals(ctx context.Context, token string) error
}

// AvailableTimesUseCase интерфейс use case вычисления свободных слотов
type AvailableTimesUseCase interface {
	Execute(ctx context.Context, req *getAvailableTimes.Request) (*getAvailableTimes.Response, error)
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
