package login

import (
	"context"

	"github.com/sattis-studio/booking-web/internal/integrations/salonapi"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*salonapi.LoginResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
