package list_appointments

import (
	"context"

	appointmentsModels "github.com/sattis-studio/booking-web/internal/service/appointments/models"
)

type AppointmentsService interface {
	List(ctx context.Context, token string, req *appointmentsModels.ListRequest) (*appointmentsModels.ListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
