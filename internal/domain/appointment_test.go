package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sattis-studio/booking-web/pkg/ptr"
)

func TestAppointment_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   AppointmentStatus
		to     AppointmentStatus
		wantOK bool
	}{
		{name: "confirmed to finished", from: StatusConfirmed, to: StatusFinished, wantOK: true},
		{name: "confirmed to canceled", from: StatusConfirmed, to: StatusCanceled, wantOK: true},
		{name: "confirmed to confirmed", from: StatusConfirmed, to: StatusConfirmed, wantOK: false},
		{name: "finished is closed", from: StatusFinished, to: StatusCanceled, wantOK: false},
		{name: "canceled is closed", from: StatusCanceled, to: StatusFinished, wantOK: false},
		{name: "no reopening", from: StatusFinished, to: StatusConfirmed, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Appointment{Status: tt.from}
			assert.Equal(t, tt.wantOK, a.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointmentsFilter_Matches(t *testing.T) {
	appointment := Appointment{
		ID:     "apt-1",
		Date:   "2026-09-15",
		Time:   "10:00",
		Status: StatusConfirmed,
		Service: Service{
			ID: "svc-1",
		},
		Professional: Professional{
			ID: "pro-1",
		},
	}

	tests := []struct {
		name           string
		filter         AppointmentsFilter
		customerMissed bool
		want           bool
	}{
		{
			name:   "empty filter matches",
			filter: AppointmentsFilter{},
			want:   true,
		},
		{
			name:   "status subset matches",
			filter: AppointmentsFilter{Statuses: []AppointmentStatus{StatusConfirmed}},
			want:   true,
		},
		{
			name:   "status subset rejects",
			filter: AppointmentsFilter{Statuses: []AppointmentStatus{StatusFinished, StatusCanceled}},
			want:   false,
		},
		{
			name:   "date and service intersection matches",
			filter: AppointmentsFilter{Date: ptr.Ptr("2026-09-15"), ServiceID: ptr.Ptr("svc-1")},
			want:   true,
		},
		{
			name:   "date matches but service differs",
			filter: AppointmentsFilter{Date: ptr.Ptr("2026-09-15"), ServiceID: ptr.Ptr("svc-2")},
			want:   false,
		},
		{
			name:   "professional differs",
			filter: AppointmentsFilter{ProfessionalID: ptr.Ptr("pro-2")},
			want:   false,
		},
		{
			name:           "missed aggregate matches",
			filter:         AppointmentsFilter{Missed: ptr.Ptr(true)},
			customerMissed: true,
			want:           true,
		},
		{
			name:   "missed aggregate rejects",
			filter: AppointmentsFilter{Missed: ptr.Ptr(true)},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(&appointment, tt.customerMissed))
		})
	}
}

func TestSortAppointments(t *testing.T) {
	appointments := []Appointment{
		{ID: "c", Date: "2026-09-16", Time: "09:00"},
		{ID: "a", Date: "2026-09-15", Time: "10:00"},
		{ID: "b", Date: "2026-09-15", Time: "12:30"},
	}

	SortAppointments(appointments, false)
	assert.Equal(t, "a", appointments[0].ID)
	assert.Equal(t, "b", appointments[1].ID)
	assert.Equal(t, "c", appointments[2].ID)

	SortAppointments(appointments, true)
	assert.Equal(t, "c", appointments[0].ID)
	assert.Equal(t, "b", appointments[1].ID)
	assert.Equal(t, "a", appointments[2].ID)
}
