package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sattis-studio/booking-web/internal/infra/sessions"
	"github.com/sattis-studio/booking-web/internal/integrations/salonapi"
)

// UseCase use case подтверждения записи: принимает данные клиента с шага 4,
// отправляет создание записи на backend и переводит сессию на финальный шаг.
// При отказе backend сессия остаётся на шаге данных клиента с сохранёнными полями.
type UseCase struct {
	sessionRepo  SessionRepository
	client       BackendClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessionRepo SessionRepository, client BackendClient, logger Logger) *UseCase {
	return &UseCase{
		sessionRepo:  sessionRepo,
		client:       client,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: session=%s", req.SessionID)

	// 1. Валидация данных клиента
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем сессию мастера
	session, err := uc.sessionRepo.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			uc.logger.Warn("CreateAppointment: session %s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("CreateAppointment: failed to load session %s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to load session: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	// 3. Заполняем данные клиента на шаге 4
	name := strings.TrimSpace(req.CustomerName)
	email := strings.TrimSpace(req.CustomerEmail)
	phone := strings.TrimSpace(req.CustomerPhone)

	if !session.SetCustomerDetails(name, email, phone, now) {
		uc.logger.Warn("CreateAppointment: session %s is on step %d, expected customer details step",
			req.SessionID, session.Step)
		return nil, ErrWrongStep
	}

	// 4. Сессия должна содержать полный выбор предыдущих шагов
	if !session.ReadyToSubmit() {
		uc.logger.Warn("CreateAppointment: session %s has incomplete selections", req.SessionID)
		return nil, ErrIncompleteSession
	}

	// Сохраняем введённые данные до обращения к backend: при отказе
	// клиент остаётся на шаге 4 с заполненной формой
	uc.sessionRepo.Save(session)

	// 5. Создаём запись на backend
	appointment, err := uc.client.CreateAppointment(ctx, &salonapi.CreateAppointmentRequest{
		CustomerName:   session.CustomerName,
		CustomerEmail:  session.CustomerEmail,
		CustomerPhone:  session.CustomerPhone,
		Date:           session.Date,
		Time:           session.Time.String(),
		ServiceID:      session.ServiceID,
		ProfessionalID: session.ProfessionalID,
	})
	if err != nil {
		if errors.Is(err, salonapi.ErrBadRequest) || errors.Is(err, salonapi.ErrNotFound) {
			uc.logger.Warn("CreateAppointment: backend rejected session %s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: %v", ErrCreateRejected, err)
		}
		uc.logger.Error("CreateAppointment: backend call failed for session %s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	// 6. Переводим сессию на финальный шаг
	session.Confirm(appointment.ID, uc.timeProvider.Now())
	uc.sessionRepo.Save(session)

	uc.logger.Info("CreateAppointment: session %s confirmed, appointment id=%s", req.SessionID, appointment.ID)

	return &Response{
		Session:     *session,
		Appointment: *appointment,
	}, nil
}
