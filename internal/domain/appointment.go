package domain

import (
	"sort"

	"github.com/sattis-studio/booking-web/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusFinished  AppointmentStatus = "FINISHED"
	StatusCanceled  AppointmentStatus = "CANCELED"
)

// IsValid returns true if the status is one of the known statuses
func (s AppointmentStatus) IsValid() bool {
	return s == StatusConfirmed || s == StatusFinished || s == StatusCanceled
}

// Appointment represents a booked appointment as served by the salon backend
type Appointment struct {
	ID            string
	Date          string // calendar date, YYYY-MM-DD
	Time          types.TimeString
	Status        AppointmentStatus
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	IsMissed      bool
	Service       Service
	Professional  Professional
}

// IsActive returns true if the appointment is still upcoming
func (a *Appointment) IsActive() bool {
	return a.Status == StatusConfirmed
}

// IsClosed returns true if the appointment reached a terminal status
func (a *Appointment) IsClosed() bool {
	return a.Status == StatusFinished || a.Status == StatusCanceled
}

// CanTransitionTo returns true if the status transition is allowed.
// Transitions are one-directional: CONFIRMED -> {FINISHED, CANCELED}.
func (a *Appointment) CanTransitionTo(target AppointmentStatus) bool {
	if a.Status != StatusConfirmed {
		return false
	}
	return target == StatusFinished || target == StatusCanceled
}

// SortKey returns the composite (date, time) ordering key.
// Both parts are fixed-width, so lexicographic order is chronological order.
func (a *Appointment) SortKey() string {
	return a.Date + " " + a.Time.String()
}

// AppointmentsFilter фильтр для отображения списков записей
// Все заданные предикаты объединяются по AND
type AppointmentsFilter struct {
	Statuses       []AppointmentStatus // Подмножество статусов (обязательный предикат вида)
	Date           *string             // Точное совпадение даты (опционально)
	ServiceID      *string             // Точное совпадение услуги (опционально)
	ProfessionalID *string             // Точное совпадение мастера (опционально)
	Missed         *bool               // Совпадение агрегата "клиент пропускал" (опционально)
}

// MatchesStatus returns true if the appointment status is in the filter subset.
// An empty subset matches everything.
func (f *AppointmentsFilter) MatchesStatus(s AppointmentStatus) bool {
	if len(f.Statuses) == 0 {
		return true
	}
	for _, status := range f.Statuses {
		if status == s {
			return true
		}
	}
	return false
}

// Matches applies every configured predicate to the appointment.
// customerMissed is the per-customer missed aggregate for the appointment's email.
func (f *AppointmentsFilter) Matches(a *Appointment, customerMissed bool) bool {
	if !f.MatchesStatus(a.Status) {
		return false
	}
	if f.Date != nil && a.Date != *f.Date {
		return false
	}
	if f.ServiceID != nil && a.Service.ID != *f.ServiceID {
		return false
	}
	if f.ProfessionalID != nil && a.Professional.ID != *f.ProfessionalID {
		return false
	}
	if f.Missed != nil && customerMissed != *f.Missed {
		return false
	}
	return true
}

// SortAppointments sorts appointments by the (date, time) composite key,
// ascending for the active list and descending for history
func SortAppointments(appointments []Appointment, descending bool) {
	sort.SliceStable(appointments, func(i, j int) bool {
		if descending {
			return appointments[i].SortKey() > appointments[j].SortKey()
		}
		return appointments[i].SortKey() < appointments[j].SortKey()
	})
}
