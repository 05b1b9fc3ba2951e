package catalog

import (
	"context"

	"github.com/sattis-studio/booking-web/internal/domain"
	"github.com/sattis-studio/booking-web/internal/integrations/salonapi"
)

// CatalogStore разделяемое хранилище каталога
type CatalogStore interface {
	FetchServices(ctx context.Context, token string) error
	FetchProfessionals(ctx context.Context, token string) error
	FetchCategories(ctx context.Context, token string) error
	Services() []domain.Service
	Professionals() []domain.Professional
	Categories() []domain.Category
}

// BackendClient интерфейс backend для мутаций каталога
type BackendClient interface {
	CreateService(ctx context.Context, token string, svc *salonapi.ServiceRequest) (*domain.Service, error)
	UpdateService(ctx context.Context, token, id string, svc *salonapi.ServiceRequest) (*domain.Service, error)
	DeleteService(ctx context.Context, token, id string) error
	CreateProfessional(ctx context.Context, token string, pro *salonapi.ProfessionalRequest, image *salonapi.ImageFile) (*domain.Professional, error)
	UpdateProfessional(ctx context.Context, token, id string, pro *salonapi.ProfessionalRequest, image *salonapi.ImageFile) (*domain.Professional, error)
	DeleteProfessional(ctx context.Context, token, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
