package start_wizard

import "github.com/sattis-studio/booking-web/internal/api/handlers"

// StartResponse HTTP response model
type StartResponse struct {
	Session  handlers.WizardSessionView `json:"session"`
	Services []handlers.ServiceView     `json:"services"`
}
