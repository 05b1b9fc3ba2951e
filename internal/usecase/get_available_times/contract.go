package get_available_times

import (
	"context"

	"github.com/sattis-studio/booking-web/internal/domain"
	"github.com/sattis-studio/booking-web/pkg/types"
)

// BackendClient интерфейс клиента backend API
type BackendClient interface {
	// GetAvailableServices возвращает услуги с актуальными на дату наборами слотов
	GetAvailableServices(ctx context.Context, date string) ([]domain.Service, error)
}

// BookedTimesProvider источник занятых слотов мастера
// (подтверждённые записи из разделяемого хранилища)
type BookedTimesProvider interface {
	BookedTimes(professionalID, date string) []types.TimeString
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
