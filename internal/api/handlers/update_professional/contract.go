package update_professional

import (
	"context"

	"github.com/sattis-studio/booking-web/internal/domain"
	catalogModels "github.com/sattis-studio/booking-web/internal/service/catalog/models"
)

type CatalogService interface {
	UpdateProfessional(ctx context.Context, token, id string, input *catalogModels.ProfessionalInput) (*domain.Professional, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
