package update_appointment_status

import (
	"context"

	appointmentsModels "github.com/sattis-studio/booking-web/internal/service/appointments/models"
)

type AppointmentsService interface {
	UpdateStatus(ctx context.Context, token string, req *appointmentsModels.UpdateStatusRequest) (*appointmentsModels.StatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
