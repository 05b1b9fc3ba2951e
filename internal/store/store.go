package store

import (
	"context"
	"errors"
	"sync"

	"github.com/sattis-studio/booking-web/internal/domain"
	"github.com/sattis-studio/booking-web/pkg/types"
)

// ErrAppointmentNotFound возвращается, когда записи нет в локальном хранилище
var ErrAppointmentNotFound = errors.New("store: appointment not found")

// Store разделяемое in-memory хранилище коллекций, загружаемых с backend:
// записи, услуги, мастера, категории и производная карта пропусков по клиентам.
// Передаётся зависимостям явно, а не через глобальное состояние.
//
// Каждая коллекция имеет счётчик поколений: fetch запоминает поколение на
// старте и коммитит результат только если за время запроса не стартовал более
// новый fetch той же коллекции. Так пересекающиеся запросы (быстрая смена
// фильтров) не перетирают свежие данные устаревшим ответом.
type Store struct {
	client BackendClient
	log    Logger

	mu            sync.RWMutex
	appointments  []domain.Appointment
	services      []domain.Service
	professionals []domain.Professional
	categories    []domain.Category
	missedByEmail map[string]bool

	appointmentsGen  uint64
	servicesGen      uint64
	professionalsGen uint64
	categoriesGen    uint64
}

// New создает пустое хранилище
func New(client BackendClient, log Logger) *Store {
	return &Store{
		client:        client,
		log:           log,
		missedByEmail: make(map[string]bool),
	}
}

// FetchAppointments загружает записи с backend по фильтру и заменяет коллекцию.
// При ошибке прежнее состояние не меняется, повторов нет.
// Для каждого уникального email из результата дозапрашивается агрегат пропусков.
func (s *Store) FetchAppointments(ctx context.Context, token string, filter domain.AppointmentsFilter) error {
	s.mu.Lock()
	s.appointmentsGen++
	gen := s.appointmentsGen
	s.mu.Unlock()

	appointments, err := s.client.ListAppointments(ctx, token, filter)
	if err != nil {
		s.log.Error("Store: failed to fetch appointments: %v", err)
		return err
	}

	s.mu.Lock()
	if gen != s.appointmentsGen {
		s.mu.Unlock()
		s.log.Warn("Store: dropping stale appointments response (gen=%d, current=%d)", gen, s.appointmentsGen)
		return nil
	}
	s.appointments = appointments
	s.mu.Unlock()

	s.log.Info("Store: appointments collection replaced, count=%d", len(appointments))

	s.refreshMissedStatuses(ctx, token, appointments)
	return nil
}

// refreshMissedStatuses дозапрашивает агрегат пропусков для каждого
// уникального email; ошибки отдельных запросов логируются и пропускаются
func (s *Store) refreshMissedStatuses(ctx context.Context, token string, appointments []domain.Appointment) {
	seen := make(map[string]struct{}, len(appointments))

	for i := range appointments {
		email := appointments[i].CustomerEmail
		if email == "" {
			continue
		}
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}

		missed, err := s.client.GetCustomerMissed(ctx, token, email)
		if err != nil {
			s.log.Warn("Store: failed to fetch missed status for %s: %v", email, err)
			continue
		}
		s.SetCustomerMissed(email, missed)
	}
}

// FetchServices загружает и заменяет коллекцию услуг
func (s *Store) FetchServices(ctx context.Context, token string) error {
	s.mu.Lock()
	s.servicesGen++
	gen := s.servicesGen
	s.mu.Unlock()

	services, err := s.client.ListServices(ctx, token)
	if err != nil {
		s.log.Error("Store: failed to fetch services: %v", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.servicesGen {
		s.log.Warn("Store: dropping stale services response")
		return nil
	}
	s.services = services
	return nil
}

// FetchProfessionals загружает и заменяет коллекцию мастеров
func (s *Store) FetchProfessionals(ctx context.Context, token string) error {
	s.mu.Lock()
	s.professionalsGen++
	gen := s.professionalsGen
	s.mu.Unlock()

	professionals, err := s.client.ListProfessionals(ctx, token)
	if err != nil {
		s.log.Error("Store: failed to fetch professionals: %v", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.professionalsGen {
		s.log.Warn("Store: dropping stale professionals response")
		return nil
	}
	s.professionals = professionals
	return nil
}

// FetchServicesAndProfessionals выполняет два независимых запроса; частичный
// отказ допустим — успешная коллекция обновляется, упавшая остаётся прежней.
// Возвращаемая ошибка агрегирует отказы для вызывающего
func (s *Store) FetchServicesAndProfessionals(ctx context.Context, token string) error {
	servicesErr := s.FetchServices(ctx, token)
	professionalsErr := s.FetchProfessionals(ctx, token)
	return errors.Join(servicesErr, professionalsErr)
}

// FetchCategories загружает и заменяет коллекцию категорий
func (s *Store) FetchCategories(ctx context.Context, token string) error {
	s.mu.Lock()
	s.categoriesGen++
	gen := s.categoriesGen
	s.mu.Unlock()

	categories, err := s.client.ListCategories(ctx, token)
	if err != nil {
		s.log.Error("Store: failed to fetch categories: %v", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.categoriesGen {
		s.log.Warn("Store: dropping stale categories response")
		return nil
	}
	s.categories = categories
	return nil
}

// Снимки коллекций (копии, безопасны для конкурентного использования)

// Appointments возвращает копию коллекции записей
func (s *Store) Appointments() []domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

// Services возвращает копию коллекции услуг
func (s *Store) Services() []domain.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Service, len(s.services))
	copy(out, s.services)
	return out
}

// Professionals возвращает копию коллекции мастеров
func (s *Store) Professionals() []domain.Professional {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Professional, len(s.professionals))
	copy(out, s.professionals)
	return out
}

// Categories возвращает копию коллекции категорий
func (s *Store) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// CustomerMissed возвращает агрегат "клиент пропускал запись" для email
func (s *Store) CustomerMissed(email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.missedByEmail[email]
}

// SetCustomerMissed локально выставляет агрегат пропусков клиента
func (s *Store) SetCustomerMissed(email string, missed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.missedByEmail[email] = missed
}

// ConfirmedCount пересчитывает количество подтверждённых записей при каждом чтении
func (s *Store) ConfirmedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for i := range s.appointments {
		if s.appointments[i].Status == domain.StatusConfirmed {
			count++
		}
	}
	return count
}

// BookedTimes возвращает занятые слоты мастера на дату
// (времена его подтверждённых записей)
func (s *Store) BookedTimes(professionalID, date string) []types.TimeString {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var booked []types.TimeString
	for i := range s.appointments {
		a := &s.appointments[i]
		if a.Professional.ID == professionalID && a.Date == date && a.Status == domain.StatusConfirmed {
			booked = append(booked, a.Time)
		}
	}
	return booked
}

// Точечные мутации после подтверждённых backend операций

// FindAppointment возвращает копию записи по id
func (s *Store) FindAppointment(id string) (domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.appointments {
		if s.appointments[i].ID == id {
			return s.appointments[i], nil
		}
	}
	return domain.Appointment{}, ErrAppointmentNotFound
}

// UpdateAppointmentStatus выставляет новый статус записи в локальной коллекции
func (s *Store) UpdateAppointmentStatus(id string, status domain.AppointmentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments[i].Status = status
			return nil
		}
	}
	return ErrAppointmentNotFound
}

// SetAppointmentMissed выставляет флаг пропуска на записи и пересчитывает
// агрегат клиента по локальной коллекции
func (s *Store) SetAppointmentMissed(id string, missed bool) (domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated *domain.Appointment
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments[i].IsMissed = missed
			updated = &s.appointments[i]
			break
		}
	}
	if updated == nil {
		return domain.Appointment{}, ErrAppointmentNotFound
	}

	email := updated.CustomerEmail
	aggregate := false
	for i := range s.appointments {
		if s.appointments[i].CustomerEmail == email && s.appointments[i].IsMissed {
			aggregate = true
			break
		}
	}
	s.missedByEmail[email] = aggregate

	return *updated, nil
}

// ClearCustomerMissed снимает флаг пропуска со всех записей клиента
// и сбрасывает агрегат
func (s *Store) ClearCustomerMissed(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].CustomerEmail == email {
			s.appointments[i].IsMissed = false
		}
	}
	s.missedByEmail[email] = false
}
