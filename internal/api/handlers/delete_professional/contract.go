package delete_professional

import "context"

type CatalogService interface {
	DeleteProfessional(ctx context.Context, token, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
