package reset_missed

import "context"

type AppointmentsService interface {
	ResetMissed(ctx context.Context, token, email string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
