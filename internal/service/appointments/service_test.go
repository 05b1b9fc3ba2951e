package appointments

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sattis-studio/booking-web/internal/domain"
	"github.com/sattis-studio/booking-web/internal/integrations/salonapi"
	"github.com/sattis-studio/booking-web/internal/service/appointments/models"
	"github.com/sattis-studio/booking-web/internal/store"
	"github.com/sattis-studio/booking-web/pkg/ptr"
	"github.com/sattis-studio/booking-web/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeStore struct {
	appointments []domain.Appointment
	missed       map[string]bool
	fetchErr     error
	fetchCount   int
	cleared      []string
}

func (f *fakeStore) FetchAppointments(_ context.Context, _ string, _ domain.AppointmentsFilter) error {
	f.fetchCount++
	return f.fetchErr
}

func (f *fakeStore) Appointments() []domain.Appointment {
	out := make([]domain.Appointment, len(f.appointments))
	copy(out, f.appointments)
	return out
}

func (f *fakeStore) CustomerMissed(email string) bool { return f.missed[email] }

func (f *fakeStore) FindAppointment(id string) (domain.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			return f.appointments[i], nil
		}
	}
	return domain.Appointment{}, store.ErrAppointmentNotFound
}

func (f *fakeStore) UpdateAppointmentStatus(id string, status domain.AppointmentStatus) error {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			f.appointments[i].Status = status
			return nil
		}
	}
	return store.ErrAppointmentNotFound
}

func (f *fakeStore) SetAppointmentMissed(id string, missed bool) (domain.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			f.appointments[i].IsMissed = missed
			f.missed[f.appointments[i].CustomerEmail] = missed
			return f.appointments[i], nil
		}
	}
	return domain.Appointment{}, store.ErrAppointmentNotFound
}

func (f *fakeStore) ClearCustomerMissed(email string) {
	delete(f.missed, email)
	f.cleared = append(f.cleared, email)
}

type fakeBackend struct {
	err          error
	statusCalls  int
	toggleCalls  int
	resetEmails  []string
	lastStatusID string
}

func (f *fakeBackend) UpdateAppointmentStatus(_ context.Context, _, id string, _ domain.AppointmentStatus) error {
	f.statusCalls++
	f.lastStatusID = id
	return f.err
}

func (f *fakeBackend) ToggleMissed(context.Context, string, string) error {
	f.toggleCalls++
	return f.err
}

func (f *fakeBackend) ResetMissedCount(_ context.Context, _, email string) error {
	f.resetEmails = append(f.resetEmails, email)
	return f.err
}

func appointment(id, date string, slot types.TimeString, status domain.AppointmentStatus) domain.Appointment {
	return domain.Appointment{
		ID:            id,
		Date:          date,
		Time:          slot,
		Status:        status,
		CustomerEmail: id + "@example.com",
		Service:       domain.Service{ID: "svc-1"},
		Professional:  domain.Professional{ID: "pro-1"},
	}
}

func newTestService(appointments ...domain.Appointment) (*Service, *fakeStore, *fakeBackend) {
	st := &fakeStore{appointments: appointments, missed: map[string]bool{}}
	client := &fakeBackend{}
	return NewService(st, client, nopLogger{}), st, client
}

func TestService_List_ActiveSortedAscending(t *testing.T) {
	svc, _, _ := newTestService(
		appointment("a1", "2026-09-02", "10:00", domain.StatusConfirmed),
		appointment("a2", "2026-09-01", "12:00", domain.StatusConfirmed),
		appointment("a3", "2026-09-01", "09:00", domain.StatusFinished),
		appointment("a4", "2026-09-01", "09:30", domain.StatusConfirmed),
	)

	resp, err := svc.List(context.Background(), "token", &models.ListRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Appointments, 3)
	assert.Equal(t, "a4", resp.Appointments[0].ID)
	assert.Equal(t, "a2", resp.Appointments[1].ID)
	assert.Equal(t, "a1", resp.Appointments[2].ID)
	assert.Equal(t, 3, resp.Total)
}

func TestService_History_ClosedSortedDescending(t *testing.T) {
	svc, _, _ := newTestService(
		appointment("a1", "2026-08-01", "10:00", domain.StatusFinished),
		appointment("a2", "2026-08-03", "10:00", domain.StatusCanceled),
		appointment("a3", "2026-08-02", "10:00", domain.StatusConfirmed),
	)

	resp, err := svc.History(context.Background(), "token", &models.ListRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Appointments, 2)
	assert.Equal(t, "a2", resp.Appointments[0].ID)
	assert.Equal(t, "a1", resp.Appointments[1].ID)
}

func TestService_List_FiltersCombine(t *testing.T) {
	target := appointment("a1", "2026-09-01", "10:00", domain.StatusConfirmed)
	otherDate := appointment("a2", "2026-09-02", "10:00", domain.StatusConfirmed)
	otherService := appointment("a3", "2026-09-01", "11:00", domain.StatusConfirmed)
	otherService.Service.ID = "svc-2"

	svc, st, _ := newTestService(target, otherDate, otherService)
	st.missed[target.CustomerEmail] = true

	resp, err := svc.List(context.Background(), "token", &models.ListRequest{
		Date:      "2026-09-01",
		ServiceID: "svc-1",
		Missed:    ptr.Ptr(true),
	})
	require.NoError(t, err)

	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "a1", resp.Appointments[0].ID)
	assert.True(t, resp.CustomerMissed[target.CustomerEmail])
}

func TestService_List_DefaultPageSize(t *testing.T) {
	var all []domain.Appointment
	for i := 0; i < 25; i++ {
		all = append(all, appointment(
			fmt.Sprintf("a%02d", i), "2026-09-01", "10:00", domain.StatusConfirmed))
	}
	svc, _, _ := newTestService(all...)

	resp, err := svc.List(context.Background(), "token", &models.ListRequest{})
	require.NoError(t, err)

	assert.Len(t, resp.Appointments, domain.DefaultPageSize)
	assert.Equal(t, 25, resp.Total)
	assert.Equal(t, domain.DefaultPageSize, resp.Limit)
}

func TestService_List_LimitCappedToTotal(t *testing.T) {
	svc, _, _ := newTestService(
		appointment("a1", "2026-09-01", "10:00", domain.StatusConfirmed),
	)

	resp, err := svc.List(context.Background(), "token", &models.ListRequest{Limit: 50})
	require.NoError(t, err)

	assert.Len(t, resp.Appointments, 1)
	assert.Equal(t, 1, resp.Limit)
}

func TestService_List_FetchFailureServesCached(t *testing.T) {
	svc, st, _ := newTestService(
		appointment("a1", "2026-09-01", "10:00", domain.StatusConfirmed),
	)
	st.fetchErr = fmt.Errorf("backend down")

	resp, err := svc.List(context.Background(), "token", &models.ListRequest{})
	require.NoError(t, err)

	assert.Len(t, resp.Appointments, 1)
	assert.Equal(t, 1, st.fetchCount)
}

func TestService_UpdateStatus(t *testing.T) {
	target := appointment("a1", "2026-09-01", "10:00", domain.StatusConfirmed)
	svc, st, client := newTestService(target)
	st.missed[target.CustomerEmail] = true

	result, err := svc.UpdateStatus(context.Background(), "token", &models.UpdateStatusRequest{
		AppointmentID: "a1",
		Status:        domain.StatusFinished,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusFinished, result.Appointment.Status)
	assert.True(t, result.CustomerMissed)
	assert.Equal(t, "a1", client.lastStatusID)
	assert.Equal(t, domain.StatusFinished, st.appointments[0].Status)
}

func TestService_UpdateStatus_ClosedImmutable(t *testing.T) {
	svc, _, client := newTestService(
		appointment("a1", "2026-09-01", "10:00", domain.StatusFinished),
	)

	_, err := svc.UpdateStatus(context.Background(), "token", &models.UpdateStatusRequest{
		AppointmentID: "a1",
		Status:        domain.StatusCanceled,
	})

	assert.ErrorIs(t, err, ErrTransitionNotAllowed)
	assert.Zero(t, client.statusCalls)
}

func TestService_UpdateStatus_InvalidStatus(t *testing.T) {
	svc, _, _ := newTestService(
		appointment("a1", "2026-09-01", "10:00", domain.StatusConfirmed),
	)

	_, err := svc.UpdateStatus(context.Background(), "token", &models.UpdateStatusRequest{
		AppointmentID: "a1",
		Status:        "PENDING",
	})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.UpdateStatus(context.Background(), "token", &models.UpdateStatusRequest{
		AppointmentID: "missing",
		Status:        domain.StatusFinished,
	})

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_UpdateStatus_BackendErrors(t *testing.T) {
	tests := []struct {
		name       string
		backendErr error
		wantErr    error
	}{
		{"unauthorized", salonapi.ErrUnauthorized, ErrUnauthorized},
		{"forbidden", salonapi.ErrForbidden, ErrUnauthorized},
		{"rejected", fmt.Errorf("%w: oops", salonapi.ErrBadRequest), ErrBackendRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, st, client := newTestService(
				appointment("a1", "2026-09-01", "10:00", domain.StatusConfirmed),
			)
			client.err = tt.backendErr

			_, err := svc.UpdateStatus(context.Background(), "token", &models.UpdateStatusRequest{
				AppointmentID: "a1",
				Status:        domain.StatusFinished,
			})

			assert.ErrorIs(t, err, tt.wantErr)
			// локальный снимок не правится при отказе backend
			assert.Equal(t, domain.StatusConfirmed, st.appointments[0].Status)
		})
	}
}

func TestService_ToggleMissed(t *testing.T) {
	svc, st, client := newTestService(
		appointment("a1", "2026-09-01", "10:00", domain.StatusConfirmed),
	)

	resp, err := svc.ToggleMissed(context.Background(), "token", &models.ToggleMissedRequest{
		AppointmentID: "a1",
	})
	require.NoError(t, err)

	assert.True(t, resp.Appointment.IsMissed)
	assert.True(t, resp.CustomerMissed)
	assert.Equal(t, 1, client.toggleCalls)
	assert.True(t, st.appointments[0].IsMissed)

	// повторное переключение снимает флаг
	resp, err = svc.ToggleMissed(context.Background(), "token", &models.ToggleMissedRequest{
		AppointmentID: "a1",
	})
	require.NoError(t, err)
	assert.False(t, resp.Appointment.IsMissed)
}

func TestService_ToggleMissed_BackendFailureKeepsSnapshot(t *testing.T) {
	svc, st, client := newTestService(
		appointment("a1", "2026-09-01", "10:00", domain.StatusConfirmed),
	)
	client.err = salonapi.ErrInternal

	_, err := svc.ToggleMissed(context.Background(), "token", &models.ToggleMissedRequest{
		AppointmentID: "a1",
	})

	assert.ErrorIs(t, err, ErrBackendRejected)
	assert.False(t, st.appointments[0].IsMissed)
}

func TestService_ResetMissed(t *testing.T) {
	svc, st, client := newTestService()
	st.missed["client@example.com"] = true

	err := svc.ResetMissed(context.Background(), "token", "client@example.com")
	require.NoError(t, err)

	assert.Equal(t, []string{"client@example.com"}, client.resetEmails)
	assert.Equal(t, []string{"client@example.com"}, st.cleared)
	assert.False(t, st.missed["client@example.com"])
}

func TestService_ResetMissed_EmptyEmail(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.ResetMissed(context.Background(), "token", "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
