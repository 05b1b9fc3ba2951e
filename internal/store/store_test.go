package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sattis-studio/booking-web/internal/domain"
	"github.com/sattis-studio/booking-web/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeClient struct {
	appointments  []domain.Appointment
	services      []domain.Service
	professionals []domain.Professional
	categories    []domain.Category
	missed        map[string]bool

	appointmentsErr error
	servicesErr     error
	missedErr       error

	// beforeAppointmentsReturn вызывается перед возвратом ListAppointments,
	// позволяет эмулировать пересекающиеся запросы
	beforeAppointmentsReturn func()
}

func (f *fakeClient) ListAppointments(_ context.Context, _ string, _ domain.AppointmentsFilter) ([]domain.Appointment, error) {
	if f.appointmentsErr != nil {
		return nil, f.appointmentsErr
	}
	result := f.appointments
	if f.beforeAppointmentsReturn != nil {
		hook := f.beforeAppointmentsReturn
		f.beforeAppointmentsReturn = nil
		hook()
	}
	return result, nil
}

func (f *fakeClient) ListServices(_ context.Context, _ string) ([]domain.Service, error) {
	if f.servicesErr != nil {
		return nil, f.servicesErr
	}
	return f.services, nil
}

func (f *fakeClient) ListProfessionals(_ context.Context, _ string) ([]domain.Professional, error) {
	return f.professionals, nil
}

func (f *fakeClient) ListCategories(_ context.Context, _ string) ([]domain.Category, error) {
	return f.categories, nil
}

func (f *fakeClient) GetCustomerMissed(_ context.Context, _ string, email string) (bool, error) {
	if f.missedErr != nil {
		return false, f.missedErr
	}
	return f.missed[email], nil
}

func confirmedAppointment(id, email, date string, slot types.TimeString) domain.Appointment {
	return domain.Appointment{
		ID:            id,
		Date:          date,
		Time:          slot,
		Status:        domain.StatusConfirmed,
		CustomerEmail: email,
		Professional:  domain.Professional{ID: "pro-1"},
	}
}

func TestStore_FetchAppointments(t *testing.T) {
	client := &fakeClient{
		appointments: []domain.Appointment{
			confirmedAppointment("apt-1", "anna@example.com", "2026-09-15", "10:00"),
			confirmedAppointment("apt-2", "boris@example.com", "2026-09-15", "11:00"),
		},
		missed: map[string]bool{"boris@example.com": true},
	}
	s := New(client, nopLogger{})

	err := s.FetchAppointments(context.Background(), "token", domain.AppointmentsFilter{})
	require.NoError(t, err)

	assert.Len(t, s.Appointments(), 2)
	assert.False(t, s.CustomerMissed("anna@example.com"))
	assert.True(t, s.CustomerMissed("boris@example.com"))
}

func TestStore_FetchAppointments_ErrorKeepsPriorState(t *testing.T) {
	client := &fakeClient{
		appointments: []domain.Appointment{
			confirmedAppointment("apt-1", "anna@example.com", "2026-09-15", "10:00"),
		},
		missed: map[string]bool{},
	}
	s := New(client, nopLogger{})
	require.NoError(t, s.FetchAppointments(context.Background(), "token", domain.AppointmentsFilter{}))

	client.appointmentsErr = errors.New("backend down")
	err := s.FetchAppointments(context.Background(), "token", domain.AppointmentsFilter{})
	require.Error(t, err)

	// прежний снимок остаётся
	assert.Len(t, s.Appointments(), 1)
}

func TestStore_FetchAppointments_MissedLookupFailureTolerated(t *testing.T) {
	client := &fakeClient{
		appointments: []domain.Appointment{
			confirmedAppointment("apt-1", "anna@example.com", "2026-09-15", "10:00"),
		},
		missedErr: errors.New("backend down"),
	}
	s := New(client, nopLogger{})

	err := s.FetchAppointments(context.Background(), "token", domain.AppointmentsFilter{})
	require.NoError(t, err)

	assert.Len(t, s.Appointments(), 1)
	assert.False(t, s.CustomerMissed("anna@example.com"))
}

func TestStore_FetchServicesAndProfessionals_PartialFailure(t *testing.T) {
	client := &fakeClient{
		servicesErr:   errors.New("backend down"),
		professionals: []domain.Professional{{ID: "pro-1", Name: "Мария"}},
	}
	s := New(client, nopLogger{})

	err := s.FetchServicesAndProfessionals(context.Background(), "token")
	require.Error(t, err)

	// упавшая коллекция осталась пустой, успешная обновилась
	assert.Empty(t, s.Services())
	assert.Len(t, s.Professionals(), 1)
}

func TestStore_BookedTimes(t *testing.T) {
	finished := confirmedAppointment("apt-3", "anna@example.com", "2026-09-15", "12:00")
	finished.Status = domain.StatusFinished

	otherPro := confirmedAppointment("apt-4", "anna@example.com", "2026-09-15", "13:00")
	otherPro.Professional.ID = "pro-2"

	client := &fakeClient{
		appointments: []domain.Appointment{
			confirmedAppointment("apt-1", "anna@example.com", "2026-09-15", "10:00"),
			confirmedAppointment("apt-2", "boris@example.com", "2026-09-16", "10:00"),
			finished,
			otherPro,
		},
		missed: map[string]bool{},
	}
	s := New(client, nopLogger{})
	require.NoError(t, s.FetchAppointments(context.Background(), "token", domain.AppointmentsFilter{}))

	// только подтверждённые записи этого мастера на эту дату
	booked := s.BookedTimes("pro-1", "2026-09-15")
	assert.Equal(t, []types.TimeString{"10:00"}, booked)
}

func TestStore_ConfirmedCount(t *testing.T) {
	canceled := confirmedAppointment("apt-2", "anna@example.com", "2026-09-15", "11:00")
	canceled.Status = domain.StatusCanceled

	client := &fakeClient{
		appointments: []domain.Appointment{
			confirmedAppointment("apt-1", "anna@example.com", "2026-09-15", "10:00"),
			canceled,
		},
		missed: map[string]bool{},
	}
	s := New(client, nopLogger{})
	require.NoError(t, s.FetchAppointments(context.Background(), "token", domain.AppointmentsFilter{}))

	assert.Equal(t, 1, s.ConfirmedCount())

	require.NoError(t, s.UpdateAppointmentStatus("apt-1", domain.StatusFinished))
	assert.Equal(t, 0, s.ConfirmedCount())
}

func TestStore_SetAppointmentMissed_RecomputesAggregate(t *testing.T) {
	client := &fakeClient{
		appointments: []domain.Appointment{
			confirmedAppointment("apt-1", "anna@example.com", "2026-09-15", "10:00"),
			confirmedAppointment("apt-2", "anna@example.com", "2026-09-16", "10:00"),
		},
		missed: map[string]bool{},
	}
	s := New(client, nopLogger{})
	require.NoError(t, s.FetchAppointments(context.Background(), "token", domain.AppointmentsFilter{}))

	updated, err := s.SetAppointmentMissed("apt-1", true)
	require.NoError(t, err)
	assert.True(t, updated.IsMissed)
	assert.True(t, s.CustomerMissed("anna@example.com"))

	// второй флаг на другой записи клиента удерживает агрегат
	_, err = s.SetAppointmentMissed("apt-2", true)
	require.NoError(t, err)
	_, err = s.SetAppointmentMissed("apt-1", false)
	require.NoError(t, err)
	assert.True(t, s.CustomerMissed("anna@example.com"))

	_, err = s.SetAppointmentMissed("apt-2", false)
	require.NoError(t, err)
	assert.False(t, s.CustomerMissed("anna@example.com"))
}

func TestStore_SetAppointmentMissed_NotFound(t *testing.T) {
	s := New(&fakeClient{}, nopLogger{})

	_, err := s.SetAppointmentMissed("missing", true)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestStore_ClearCustomerMissed(t *testing.T) {
	client := &fakeClient{
		appointments: []domain.Appointment{
			confirmedAppointment("apt-1", "anna@example.com", "2026-09-15", "10:00"),
			confirmedAppointment("apt-2", "anna@example.com", "2026-09-16", "10:00"),
			confirmedAppointment("apt-3", "boris@example.com", "2026-09-16", "11:00"),
		},
		missed: map[string]bool{},
	}
	s := New(client, nopLogger{})
	require.NoError(t, s.FetchAppointments(context.Background(), "token", domain.AppointmentsFilter{}))

	_, err := s.SetAppointmentMissed("apt-1", true)
	require.NoError(t, err)
	_, err = s.SetAppointmentMissed("apt-3", true)
	require.NoError(t, err)

	s.ClearCustomerMissed("anna@example.com")

	assert.False(t, s.CustomerMissed("anna@example.com"))
	for _, a := range s.Appointments() {
		if a.CustomerEmail == "anna@example.com" {
			assert.False(t, a.IsMissed)
		}
	}
	// чужой клиент не затронут
	assert.True(t, s.CustomerMissed("boris@example.com"))
}

func TestStore_FindAppointment(t *testing.T) {
	client := &fakeClient{
		appointments: []domain.Appointment{
			confirmedAppointment("apt-1", "anna@example.com", "2026-09-15", "10:00"),
		},
		missed: map[string]bool{},
	}
	s := New(client, nopLogger{})
	require.NoError(t, s.FetchAppointments(context.Background(), "token", domain.AppointmentsFilter{}))

	found, err := s.FindAppointment("apt-1")
	require.NoError(t, err)
	assert.Equal(t, "apt-1", found.ID)

	_, err = s.FindAppointment("missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestStore_StaleFetchDropped(t *testing.T) {
	stale := confirmedAppointment("stale", "anna@example.com", "2026-09-15", "10:00")
	fresh := confirmedAppointment("fresh", "anna@example.com", "2026-09-16", "11:00")

	client := &fakeClient{
		appointments: []domain.Appointment{stale},
		missed:       map[string]bool{},
	}
	s := New(client, nopLogger{})

	// пока первый fetch ждёт ответа, стартует и завершается более новый
	client.beforeAppointmentsReturn = func() {
		client.appointments = []domain.Appointment{fresh}
		require.NoError(t, s.FetchAppointments(context.Background(), "token", domain.AppointmentsFilter{}))
	}

	require.NoError(t, s.FetchAppointments(context.Background(), "token", domain.AppointmentsFilter{}))

	// устаревший ответ отброшен, в хранилище данные нового запроса
	got := s.Appointments()
	require.Len(t, got, 1)
	assert.Equal(t, "fresh", got[0].ID)
}
