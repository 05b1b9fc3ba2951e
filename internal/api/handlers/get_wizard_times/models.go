package get_wizard_times

import (
	wizardModels "github.com/sattis-studio/booking-web/internal/service/wizard/models"
)

// TimesResponse HTTP response model
type TimesResponse struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *wizardModels.TimesResponse) *TimesResponse {
	times := make([]string, 0, len(resp.Times))
	for _, t := range resp.Times {
		times = append(times, t.String())
	}
	return &TimesResponse{
		Date:  resp.Date,
		Times: times,
	}
}
