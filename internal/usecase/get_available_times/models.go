package get_available_times

import "github.com/sattis-studio/booking-web/pkg/types"

// Request модель запроса свободных слотов
type Request struct {
	ServiceID      string // ID выбранной услуги
	ProfessionalID string // ID выбранного мастера
	Date           string // Дата в формате YYYY-MM-DD
}

// Response модель ответа со свободными слотами
// Порядок слотов повторяет настроенный у услуги порядок
type Response struct {
	ServiceID      string
	ProfessionalID string
	Date           string
	Times          []types.TimeString
}
