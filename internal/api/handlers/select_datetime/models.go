package select_datetime

// SelectDateTimeRequest HTTP request model
type SelectDateTimeRequest struct {
	Date string `json:"date"` // "2026-09-15"
	Time string `json:"time"` // "10:00"
}
