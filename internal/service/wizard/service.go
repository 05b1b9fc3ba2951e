package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sattis-studio/booking-web/internal/domain"
	"github.com/sattis-studio/booking-web/internal/infra/sessions"
	"github.com/sattis-studio/booking-web/internal/service/wizard/models"
	getAvailableTimes "github.com/sattis-studio/booking-web/internal/usecase/get_available_times"
	"github.com/sattis-studio/booking-web/pkg/types"
)

// Service сервис мастера публичной записи.
// Держит сессии в репозитории и проверяет каждый переход против каталога:
// услуга должна существовать, мастер должен оказывать выбранную услугу,
// слот должен входить в свободные на дату.
type Service struct {
	sessions       SessionRepository
	catalog        Catalog
	availableTimes AvailableTimesUseCase
	timeProvider   TimeProvider
	logger         Logger
}

// NewService создает новый сервис мастера записи
func NewService(
	sessionRepo SessionRepository,
	catalog Catalog,
	availableTimes AvailableTimesUseCase,
	logger Logger,
) *Service {
	return &Service{
		sessions:       sessionRepo,
		catalog:        catalog,
		availableTimes: availableTimes,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// SetTimeProvider устанавливает провайдер времени (для тестирования)
func (s *Service) SetTimeProvider(tp TimeProvider) {
	s.timeProvider = tp
}

// Start создает новую сессию мастера и возвращает список услуг для первого шага
func (s *Service) Start(ctx context.Context) (*models.StartResponse, error) {
	// Холодное хранилище прогревается прямо отсюда: каталог публичен
	// и запрашивается без токена, фоновое обновление может быть выключено
	if len(s.catalog.Services()) == 0 {
		if err := s.catalog.FetchServicesAndProfessionals(ctx, ""); err != nil {
			s.logger.Error("Wizard: catalog fetch failed: %v", err)
		}
	}

	session := domain.NewWizardSession(uuid.NewString(), s.timeProvider.Now())
	s.sessions.Save(session)

	s.logger.Info("Wizard: started session %s", session.ID)

	return &models.StartResponse{
		Session:  models.FromDomainSession(session),
		Services: s.catalog.Services(),
	}, nil
}

// Get возвращает текущее состояние сессии с данными для отображения шага
func (s *Service) Get(ctx context.Context, sessionID string) (*models.SessionResponse, error) {
	session, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	return s.sessionResponse(session), nil
}

// SelectService фиксирует выбор услуги и возвращает мастеров, которые её оказывают
func (s *Service) SelectService(ctx context.Context, sessionID, serviceID string) (*models.SessionResponse, error) {
	if strings.TrimSpace(serviceID) == "" {
		return nil, fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}

	session, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	if s.findService(serviceID) == nil {
		s.logger.Warn("Wizard: session %s selected unknown service %s", sessionID, serviceID)
		return nil, ErrServiceNotFound
	}

	if !session.SelectService(serviceID, s.timeProvider.Now()) {
		return nil, ErrWrongStep
	}
	s.sessions.Save(session)

	return s.sessionResponse(session), nil
}

// SelectProfessional фиксирует выбор мастера.
// Мастер должен существовать и оказывать ранее выбранную услугу.
func (s *Service) SelectProfessional(ctx context.Context, sessionID, professionalID string) (*models.SessionResponse, error) {
	if strings.TrimSpace(professionalID) == "" {
		return nil, fmt.Errorf("%w: professional id is required", ErrInvalidInput)
	}

	session, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	professional := s.findProfessional(professionalID)
	if professional == nil {
		s.logger.Warn("Wizard: session %s selected unknown professional %s", sessionID, professionalID)
		return nil, ErrProfessionalNotFound
	}
	if session.ServiceID != "" && !professional.Offers(session.ServiceID) {
		s.logger.Warn("Wizard: professional %s does not offer service %s", professionalID, session.ServiceID)
		return nil, ErrProfessionalUnavailable
	}

	if !session.SelectProfessional(professionalID, s.timeProvider.Now()) {
		return nil, ErrWrongStep
	}
	s.sessions.Save(session)

	return s.sessionResponse(session), nil
}

// AvailableTimes возвращает свободные слоты на дату для текущего выбора сессии
func (s *Service) AvailableTimes(ctx context.Context, sessionID, date string) (*models.TimesResponse, error) {
	session, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.ServiceID == "" || session.ProfessionalID == "" {
		return nil, ErrWrongStep
	}

	times, err := s.computeAvailableTimes(ctx, session, date)
	if err != nil {
		return nil, err
	}

	return &models.TimesResponse{
		Date:  date,
		Times: times,
	}, nil
}

// SelectDateTime фиксирует дату и слот.
// Слот пересчитывается на момент выбора: занятый за время раздумий слот отклоняется.
func (s *Service) SelectDateTime(ctx context.Context, sessionID, date string, slot types.TimeString) (*models.SessionResponse, error) {
	if err := slot.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	session, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.ServiceID == "" || session.ProfessionalID == "" {
		return nil, ErrWrongStep
	}

	times, err := s.computeAvailableTimes(ctx, session, date)
	if err != nil {
		return nil, err
	}

	available := false
	for _, t := range times {
		if t == slot {
			available = true
			break
		}
	}
	if !available {
		s.logger.Warn("Wizard: session %s requested unavailable slot %s on %s", sessionID, slot, date)
		return nil, ErrTimeNotAvailable
	}

	if !session.SelectDateTime(date, slot, s.timeProvider.Now()) {
		return nil, ErrWrongStep
	}
	s.sessions.Save(session)

	return s.sessionResponse(session), nil
}

// Back возвращает сессию на предыдущий шаг
func (s *Service) Back(ctx context.Context, sessionID string) (*models.SessionResponse, error) {
	session, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	if !session.Back(s.timeProvider.Now()) {
		return nil, ErrCannotGoBack
	}
	s.sessions.Save(session)

	return s.sessionResponse(session), nil
}

func (s *Service) getSession(sessionID string) (*domain.WizardSession, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return session, nil
}

func (s *Service) computeAvailableTimes(ctx context.Context, session *domain.WizardSession, date string) ([]types.TimeString, error) {
	resp, err := s.availableTimes.Execute(ctx, &getAvailableTimes.Request{
		ServiceID:      session.ServiceID,
		ProfessionalID: session.ProfessionalID,
		Date:           date,
	})
	if err != nil {
		if errors.Is(err, getAvailableTimes.ErrInvalidInput) || errors.Is(err, getAvailableTimes.ErrInvalidDate) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return resp.Times, nil
}

func (s *Service) findService(serviceID string) *domain.Service {
	services := s.catalog.Services()
	for i := range services {
		if services[i].ID == serviceID {
			return &services[i]
		}
	}
	return nil
}

func (s *Service) findProfessional(professionalID string) *domain.Professional {
	professionals := s.catalog.Professionals()
	for i := range professionals {
		if professionals[i].ID == professionalID {
			return &professionals[i]
		}
	}
	return nil
}

// sessionResponse собирает ответ: услуги всегда, мастера после выбора услуги
func (s *Service) sessionResponse(session *domain.WizardSession) *models.SessionResponse {
	resp := &models.SessionResponse{
		Session:  models.FromDomainSession(session),
		Services: s.catalog.Services(),
	}
	if session.ServiceID != "" {
		resp.Professionals = s.filterProfessionals(session.ServiceID)
	}
	return resp
}

// filterProfessionals возвращает мастеров, оказывающих услугу
func (s *Service) filterProfessionals(serviceID string) []domain.Professional {
	all := s.catalog.Professionals()
	filtered := make([]domain.Professional, 0, len(all))
	for _, p := range all {
		if p.Offers(serviceID) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
