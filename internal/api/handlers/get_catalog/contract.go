package get_catalog

import (
	"context"

	catalogModels "github.com/sattis-studio/booking-web/internal/service/catalog/models"
)

type CatalogService interface {
	Snapshot(ctx context.Context, token string) (*catalogModels.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
