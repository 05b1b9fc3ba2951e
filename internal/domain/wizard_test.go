package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession() (*WizardSession, time.Time) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	return NewWizardSession("sess-1", now), now
}

func TestNewWizardSession(t *testing.T) {
	s, now := newTestSession()

	assert.Equal(t, "sess-1", s.ID)
	assert.Equal(t, StepChooseService, s.Step)
	assert.Equal(t, now, s.CreatedAt)
}

func TestWizardSession_HappyPath(t *testing.T) {
	s, now := newTestSession()

	require.True(t, s.SelectService("svc-1", now))
	assert.Equal(t, StepChooseProfessional, s.Step)

	require.True(t, s.SelectProfessional("pro-1", now))
	assert.Equal(t, StepChooseDateTime, s.Step)

	require.True(t, s.SelectDateTime("2026-09-15", "10:00", now))
	assert.Equal(t, StepCustomerDetails, s.Step)

	require.True(t, s.SetCustomerDetails("Анна", "anna@example.com", "+79990001122", now))
	assert.True(t, s.ReadyToSubmit())

	require.True(t, s.Confirm("apt-1", now))
	assert.Equal(t, StepConfirmation, s.Step)
	assert.Equal(t, "apt-1", s.AppointmentID)
}

func TestWizardSession_SelectService_ResetsDownstream(t *testing.T) {
	s, now := newTestSession()

	require.True(t, s.SelectService("svc-1", now))
	require.True(t, s.SelectProfessional("pro-1", now))
	require.True(t, s.SelectDateTime("2026-09-15", "10:00", now))

	// повторный выбор услуги с шага 4 сбрасывает мастера и слот
	require.True(t, s.SelectService("svc-2", now))
	assert.Equal(t, StepChooseProfessional, s.Step)
	assert.Equal(t, "svc-2", s.ServiceID)
	assert.Empty(t, s.ProfessionalID)
	assert.Empty(t, s.Date)
	assert.True(t, s.Time.IsZero())
}

func TestWizardSession_StepGating(t *testing.T) {
	s, now := newTestSession()

	// без услуги нельзя выбрать мастера или слот
	assert.False(t, s.SelectProfessional("pro-1", now))
	assert.False(t, s.SelectDateTime("2026-09-15", "10:00", now))
	assert.False(t, s.SetCustomerDetails("Анна", "anna@example.com", "+79990001122", now))
	assert.False(t, s.Confirm("apt-1", now))

	// после финального шага сессия неизменяемая
	require.True(t, s.SelectService("svc-1", now))
	require.True(t, s.SelectProfessional("pro-1", now))
	require.True(t, s.SelectDateTime("2026-09-15", "10:00", now))
	require.True(t, s.SetCustomerDetails("Анна", "anna@example.com", "+79990001122", now))
	require.True(t, s.Confirm("apt-1", now))

	assert.False(t, s.SelectService("svc-2", now))
	assert.False(t, s.SelectProfessional("pro-2", now))
	assert.False(t, s.Back(now))
}

func TestWizardSession_Back(t *testing.T) {
	s, now := newTestSession()

	// с первого шага возврата нет
	assert.False(t, s.Back(now))

	require.True(t, s.SelectService("svc-1", now))
	require.True(t, s.SelectProfessional("pro-1", now))

	require.True(t, s.Back(now))
	assert.Equal(t, StepChooseProfessional, s.Step)

	require.True(t, s.Back(now))
	assert.Equal(t, StepChooseService, s.Step)

	assert.False(t, s.Back(now))
}

func TestWizardSession_ReadyToSubmit(t *testing.T) {
	s, now := newTestSession()

	require.True(t, s.SelectService("svc-1", now))
	require.True(t, s.SelectProfessional("pro-1", now))
	require.True(t, s.SelectDateTime("2026-09-15", "10:00", now))

	// без данных клиента не готова
	assert.False(t, s.ReadyToSubmit())

	require.True(t, s.SetCustomerDetails("Анна", "anna@example.com", "+79990001122", now))
	assert.True(t, s.ReadyToSubmit())
}
