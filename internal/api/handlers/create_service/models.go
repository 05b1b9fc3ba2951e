package create_service

import catalogModels "github.com/sattis-studio/booking-web/internal/service/catalog/models"

// CreateServiceRequest HTTP request model
type CreateServiceRequest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Duration       int      `json:"duration"`
	AvailableTimes []string `json:"availableTimes"`
	Category       string   `json:"category"`
}

// ToServiceInput конвертирует HTTP запрос в модель сервиса
func (r *CreateServiceRequest) ToServiceInput() *catalogModels.ServiceInput {
	return &catalogModels.ServiceInput{
		Name:           r.Name,
		Description:    r.Description,
		Price:          r.Price,
		Duration:       r.Duration,
		AvailableTimes: r.AvailableTimes,
		Category:       r.Category,
	}
}
