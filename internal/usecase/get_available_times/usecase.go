package get_available_times

import (
	"context"

	"github.com/sattis-studio/booking-web/internal/domain"
	"github.com/sattis-studio/booking-web/pkg/types"
)

// UseCase use case вычисления свободных слотов для мастера записи.
// Доступность считается per-professional: настроенные у услуги слоты минус
// времена подтверждённых записей выбранного мастера на выбранную дату.
type UseCase struct {
	client      BackendClient
	bookedTimes BookedTimesProvider
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client BackendClient, bookedTimes BookedTimesProvider, logger Logger) *UseCase {
	return &UseCase{
		client:      client,
		bookedTimes: bookedTimes,
		logger:      logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTimes: service=%s, professional=%s, date=%s",
		req.ServiceID, req.ProfessionalID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTimes: validation failed: %v", err)
		return nil, err
	}

	response := &Response{
		ServiceID:      req.ServiceID,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Times:          []types.TimeString{},
	}

	// 2. Получаем актуальные на дату наборы слотов услуг
	// Отказ backend отдаётся как пустой список: мастер показывает
	// "нет свободного времени", не отличая отказ от занятого дня
	services, err := uc.client.GetAvailableServices(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to fetch available services for date=%s: %v", req.Date, err)
		return response, nil
	}

	// 3. Ищем выбранную услугу
	var service *domain.Service
	for i := range services {
		if services[i].ID == req.ServiceID {
			service = &services[i]
			break
		}
	}
	if service == nil {
		uc.logger.Warn("GetAvailableTimes: service id=%s not in available set for date=%s", req.ServiceID, req.Date)
		return response, nil
	}

	// 4. Занятые слоты мастера на дату
	booked := uc.bookedTimes.BookedTimes(req.ProfessionalID, req.Date)

	// 5. Свободные слоты = настроенные минус занятые
	response.Times = subtractBookedTimes(service.AvailableTimes, booked)

	uc.logger.Info("GetAvailableTimes: %d of %d slots free for service=%s, professional=%s, date=%s",
		len(response.Times), len(service.AvailableTimes), req.ServiceID, req.ProfessionalID, req.Date)

	return response, nil
}
