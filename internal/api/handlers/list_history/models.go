package list_history

import (
	"strconv"

	"github.com/sattis-studio/booking-web/internal/api/handlers"
	appointmentsModels "github.com/sattis-studio/booking-web/internal/service/appointments/models"
)

// ListResponse HTTP response model
type ListResponse struct {
	Appointments []handlers.AppointmentView `json:"appointments"`
	Total        int                        `json:"total"`
	Limit        int                        `json:"limit"`
}

// ToServiceRequest собирает запрос сервиса из query параметров
func ToServiceRequest(date, serviceID, professionalID, missedStr, limitStr string) (*appointmentsModels.ListRequest, error) {
	req := &appointmentsModels.ListRequest{
		Date:           date,
		ServiceID:      serviceID,
		ProfessionalID: professionalID,
	}

	if missedStr != "" {
		missed, err := strconv.ParseBool(missedStr)
		if err != nil {
			return nil, err
		}
		req.Missed = &missed
	}

	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, err
		}
		req.Limit = limit
	}

	return req, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *appointmentsModels.ListResponse) *ListResponse {
	views := make([]handlers.AppointmentView, 0, len(resp.Appointments))
	for i := range resp.Appointments {
		a := &resp.Appointments[i]
		views = append(views, handlers.FromDomainAppointment(a, resp.CustomerMissed[a.CustomerEmail]))
	}
	return &ListResponse{
		Appointments: views,
		Total:        resp.Total,
		Limit:        resp.Limit,
	}
}
