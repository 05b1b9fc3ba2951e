package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sattis-studio/booking-web/internal/domain"
	"github.com/sattis-studio/booking-web/internal/infra/sessions"
	"github.com/sattis-studio/booking-web/internal/integrations/salonapi"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBackend struct {
	appointment *domain.Appointment
	err         error

	lastRequest *salonapi.CreateAppointmentRequest
}

func (f *fakeBackend) CreateAppointment(_ context.Context, req *salonapi.CreateAppointmentRequest) (*domain.Appointment, error) {
	f.lastRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return f.appointment, nil
}

func newRepoWithSession(t *testing.T) *sessions.Repository {
	t.Helper()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	session := domain.NewWizardSession("sess-1", now)
	require.True(t, session.SelectService("svc-1", now))
	require.True(t, session.SelectProfessional("pro-1", now))
	require.True(t, session.SelectDateTime("2026-09-15", "10:00", now))

	repo := sessions.NewRepository(time.Hour)
	repo.Save(session)
	return repo
}

func validRequest() *Request {
	return &Request{
		SessionID:     "sess-1",
		CustomerName:  "Анна Иванова",
		CustomerEmail: "anna@example.com",
		CustomerPhone: "+79990001122",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	repo := newRepoWithSession(t)
	backend := &fakeBackend{
		appointment: &domain.Appointment{ID: "apt-1", Status: domain.StatusConfirmed},
	}
	uc := NewUseCase(repo, backend, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "apt-1", resp.Appointment.ID)
	assert.Equal(t, domain.StepConfirmation, resp.Session.Step)
	assert.Equal(t, "apt-1", resp.Session.AppointmentID)

	// backend получил выбор из сессии, а не из тела запроса
	require.NotNil(t, backend.lastRequest)
	assert.Equal(t, "svc-1", backend.lastRequest.ServiceID)
	assert.Equal(t, "pro-1", backend.lastRequest.ProfessionalID)
	assert.Equal(t, "2026-09-15", backend.lastRequest.Date)
	assert.Equal(t, "10:00", backend.lastRequest.Time)

	// финальный шаг сохранён в репозитории
	saved, err := repo.Get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepConfirmation, saved.Step)
}

func TestUseCase_Execute_BackendRejected_KeepsFormState(t *testing.T) {
	repo := newRepoWithSession(t)
	backend := &fakeBackend{err: salonapi.ErrBadRequest}
	uc := NewUseCase(repo, backend, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCreateRejected)

	// сессия осталась на шаге данных клиента с заполненной формой
	saved, repoErr := repo.Get("sess-1")
	require.NoError(t, repoErr)
	assert.Equal(t, domain.StepCustomerDetails, saved.Step)
	assert.Equal(t, "Анна Иванова", saved.CustomerName)
	assert.Equal(t, "anna@example.com", saved.CustomerEmail)
}

func TestUseCase_Execute_BackendDown(t *testing.T) {
	repo := newRepoWithSession(t)
	backend := &fakeBackend{err: errors.New("connection refused")}
	uc := NewUseCase(repo, backend, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUseCase_Execute_SessionNotFound(t *testing.T) {
	repo := sessions.NewRepository(time.Hour)
	uc := NewUseCase(repo, &fakeBackend{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUseCase_Execute_WrongStep(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	session := domain.NewWizardSession("sess-1", now)
	require.True(t, session.SelectService("svc-1", now))

	repo := sessions.NewRepository(time.Hour)
	repo.Save(session)
	uc := NewUseCase(repo, &fakeBackend{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := NewUseCase(sessions.NewRepository(time.Hour), &fakeBackend{}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "missing name", mutate: func(r *Request) { r.CustomerName = "   " }},
		{name: "missing email", mutate: func(r *Request) { r.CustomerEmail = "" }},
		{name: "email without at", mutate: func(r *Request) { r.CustomerEmail = "anna.example.com" }},
		{name: "email bare at suffix", mutate: func(r *Request) { r.CustomerEmail = "anna@" }},
		{name: "missing phone", mutate: func(r *Request) { r.CustomerPhone = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
