package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sattis-studio/booking-web/internal/domain"
	"github.com/sattis-studio/booking-web/internal/integrations/salonapi"
	"github.com/sattis-studio/booking-web/internal/service/appointments/models"
	"github.com/sattis-studio/booking-web/internal/store"
)

// Service сервис записей для дашборда администратора.
// Чтение идёт из разделяемого хранилища, мутации сначала уходят на backend
// и только после успешного ответа применяются к локальному снимку.
type Service struct {
	store  AppointmentsStore
	client BackendClient
	logger Logger
}

// NewService создает новый сервис записей
func NewService(appointmentsStore AppointmentsStore, client BackendClient, logger Logger) *Service {
	return &Service{
		store:  appointmentsStore,
		client: client,
		logger: logger,
	}
}

// List возвращает окно активных (CONFIRMED) записей, отсортированных по возрастанию даты и времени
func (s *Service) List(ctx context.Context, token string, req *models.ListRequest) (*models.ListResponse, error) {
	return s.list(ctx, token, req, domain.ActiveStatuses, false)
}

// History возвращает окно закрытых (FINISHED, CANCELED) записей, отсортированных по убыванию
func (s *Service) History(ctx context.Context, token string, req *models.ListRequest) (*models.ListResponse, error) {
	return s.list(ctx, token, req, domain.HistoryStatuses, true)
}

func (s *Service) list(
	ctx context.Context,
	token string,
	req *models.ListRequest,
	statuses []domain.AppointmentStatus,
	descending bool,
) (*models.ListResponse, error) {
	filter := buildFilter(req, statuses)

	// 1. Обновляем снимок. Отказ backend не фатален: отдаём прежнее состояние
	if err := s.store.FetchAppointments(ctx, token, filter); err != nil {
		s.logger.Error("Appointments: fetch failed, serving cached snapshot: %v", err)
	}

	// 2. Применяем фильтры к локальному снимку
	all := s.store.Appointments()
	filtered := make([]domain.Appointment, 0, len(all))
	for i := range all {
		if filter.Matches(&all[i], s.store.CustomerMissed(all[i].CustomerEmail)) {
			filtered = append(filtered, all[i])
		}
	}

	// 3. Сортировка и окно "показать ещё"
	domain.SortAppointments(filtered, descending)

	limit := req.Limit
	if limit <= 0 {
		limit = domain.DefaultPageSize
	}
	total := len(filtered)
	if limit > total {
		limit = total
	}

	window := filtered[:limit]
	missed := make(map[string]bool, len(window))
	for i := range window {
		email := window[i].CustomerEmail
		if _, ok := missed[email]; !ok {
			missed[email] = s.store.CustomerMissed(email)
		}
	}

	return &models.ListResponse{
		Appointments:   window,
		Total:          total,
		Limit:          limit,
		CustomerMissed: missed,
	}, nil
}

// UpdateStatus переводит запись CONFIRMED в FINISHED или CANCELED.
// Закрытые записи не меняются, локальный снимок правится после успеха backend.
func (s *Service) UpdateStatus(ctx context.Context, token string, req *models.UpdateStatusRequest) (*models.StatusResponse, error) {
	if strings.TrimSpace(req.AppointmentID) == "" {
		return nil, fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}
	if !req.Status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	appointment, err := s.store.FindAppointment(req.AppointmentID)
	if err != nil {
		if errors.Is(err, store.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if !appointment.CanTransitionTo(req.Status) {
		s.logger.Warn("Appointments: transition %s -> %s rejected for %s",
			appointment.Status, req.Status, req.AppointmentID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, appointment.Status, req.Status)
	}

	if err := s.client.UpdateAppointmentStatus(ctx, token, req.AppointmentID, req.Status); err != nil {
		s.logger.Error("Appointments: backend status update failed for %s: %v", req.AppointmentID, err)
		return nil, s.mutationError(err)
	}

	if err := s.store.UpdateAppointmentStatus(req.AppointmentID, req.Status); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	appointment.Status = req.Status
	s.logger.Info("Appointments: %s moved to %s", req.AppointmentID, req.Status)
	return &models.StatusResponse{
		Appointment:    appointment,
		CustomerMissed: s.store.CustomerMissed(appointment.CustomerEmail),
	}, nil
}

// ToggleMissed переключает флаг неявки записи и пересчитывает агрегат клиента
func (s *Service) ToggleMissed(ctx context.Context, token string, req *models.ToggleMissedRequest) (*models.MissedResponse, error) {
	if strings.TrimSpace(req.AppointmentID) == "" {
		return nil, fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}

	appointment, err := s.store.FindAppointment(req.AppointmentID)
	if err != nil {
		if errors.Is(err, store.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := s.client.ToggleMissed(ctx, token, req.AppointmentID); err != nil {
		s.logger.Error("Appointments: backend missed toggle failed for %s: %v", req.AppointmentID, err)
		return nil, s.mutationError(err)
	}

	updated, err := s.store.SetAppointmentMissed(req.AppointmentID, !appointment.IsMissed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &models.MissedResponse{
		Appointment:    updated,
		CustomerMissed: s.store.CustomerMissed(updated.CustomerEmail),
	}, nil
}

// ResetMissed сбрасывает счетчик неявок клиента на backend и чистит локальные флаги
func (s *Service) ResetMissed(ctx context.Context, token, email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if err := s.client.ResetMissedCount(ctx, token, email); err != nil {
		s.logger.Error("Appointments: backend missed reset failed for %s: %v", email, err)
		return s.mutationError(err)
	}

	s.store.ClearCustomerMissed(email)
	s.logger.Info("Appointments: missed count reset for %s", email)
	return nil
}

func (s *Service) mutationError(err error) error {
	if errors.Is(err, salonapi.ErrUnauthorized) || errors.Is(err, salonapi.ErrForbidden) {
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return fmt.Errorf("%w: %v", ErrBackendRejected, err)
}

func buildFilter(req *models.ListRequest, statuses []domain.AppointmentStatus) domain.AppointmentsFilter {
	filter := domain.AppointmentsFilter{
		Statuses: statuses,
		Missed:   req.Missed,
	}
	if req.Date != "" {
		filter.Date = &req.Date
	}
	if req.ServiceID != "" {
		filter.ServiceID = &req.ServiceID
	}
	if req.ProfessionalID != "" {
		filter.ProfessionalID = &req.ProfessionalID
	}
	return filter
}
