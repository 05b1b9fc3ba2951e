package register

import "context"

type AuthService interface {
	Register(ctx context.Context, name, email, password string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
