package domain

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// List view defaults
const (
	// DefaultPageSize начальное окно инкрементальной пагинации списков
	DefaultPageSize = 20
)

// Business validation constants
const (
	MaxNameLength        = 120
	MaxDescriptionLength = 500
	MaxEmailLength       = 254
	MaxPhoneLength       = 32
	MinServicePrice      = 0
	MinServiceDuration   = 5
	MaxServiceDuration   = 480 // 8 hours
)

// ActiveStatuses статусы, отображаемые в активном списке записей
var ActiveStatuses = []AppointmentStatus{
	StatusConfirmed,
}

// HistoryStatuses статусы, отображаемые в истории записей
var HistoryStatuses = []AppointmentStatus{
	StatusFinished,
	StatusCanceled,
}
