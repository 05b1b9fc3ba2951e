package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sattis-studio/booking-web/internal/domain"
	"github.com/sattis-studio/booking-web/internal/integrations/salonapi"
	"github.com/sattis-studio/booking-web/internal/service/catalog/models"
	"github.com/sattis-studio/booking-web/pkg/types"
)

// Service сервис каталога: снимок для дашборда и CRUD услуг и мастеров.
// После каждой мутации точечно обновляется затронутая коллекция хранилища.
type Service struct {
	store  CatalogStore
	client BackendClient
	logger Logger
}

// NewService создает новый сервис каталога
func NewService(catalogStore CatalogStore, client BackendClient, logger Logger) *Service {
	return &Service{
		store:  catalogStore,
		client: client,
		logger: logger,
	}
}

// Snapshot обновляет и возвращает каталог целиком.
// Отказ любой из коллекций не фатален: отдаётся прежнее состояние коллекции.
func (s *Service) Snapshot(ctx context.Context, token string) (*models.Snapshot, error) {
	if err := s.store.FetchServices(ctx, token); err != nil {
		s.logger.Error("Catalog: services fetch failed, serving cached: %v", err)
	}
	if err := s.store.FetchProfessionals(ctx, token); err != nil {
		s.logger.Error("Catalog: professionals fetch failed, serving cached: %v", err)
	}
	if err := s.store.FetchCategories(ctx, token); err != nil {
		s.logger.Error("Catalog: categories fetch failed, serving cached: %v", err)
	}

	return &models.Snapshot{
		Services:      s.store.Services(),
		Professionals: s.store.Professionals(),
		Categories:    s.store.Categories(),
	}, nil
}

// CreateService создает услугу и обновляет коллекцию услуг
func (s *Service) CreateService(ctx context.Context, token string, input *models.ServiceInput) (*domain.Service, error) {
	if err := validateServiceInput(input); err != nil {
		return nil, err
	}

	created, err := s.client.CreateService(ctx, token, serviceRequest(input))
	if err != nil {
		s.logger.Error("Catalog: service create failed: %v", err)
		return nil, s.mutationError(err)
	}

	s.refreshServices(ctx, token)
	s.logger.Info("Catalog: service %s created", created.ID)
	return created, nil
}

// UpdateService обновляет услугу и коллекцию услуг
func (s *Service) UpdateService(ctx context.Context, token, id string, input *models.ServiceInput) (*domain.Service, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}
	if err := validateServiceInput(input); err != nil {
		return nil, err
	}

	updated, err := s.client.UpdateService(ctx, token, id, serviceRequest(input))
	if err != nil {
		s.logger.Error("Catalog: service %s update failed: %v", id, err)
		return nil, s.mutationError(err)
	}

	s.refreshServices(ctx, token)
	return updated, nil
}

// DeleteService удаляет услугу и обновляет коллекцию услуг
func (s *Service) DeleteService(ctx context.Context, token, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}

	if err := s.client.DeleteService(ctx, token, id); err != nil {
		s.logger.Error("Catalog: service %s delete failed: %v", id, err)
		return s.mutationError(err)
	}

	s.refreshServices(ctx, token)
	s.logger.Info("Catalog: service %s deleted", id)
	return nil
}

// CreateProfessional создает мастера и обновляет коллекцию мастеров
func (s *Service) CreateProfessional(ctx context.Context, token string, input *models.ProfessionalInput) (*domain.Professional, error) {
	if err := validateProfessionalInput(input); err != nil {
		return nil, err
	}

	created, err := s.client.CreateProfessional(ctx, token, professionalRequest(input), imageFile(input.Image))
	if err != nil {
		s.logger.Error("Catalog: professional create failed: %v", err)
		return nil, s.mutationError(err)
	}

	s.refreshProfessionals(ctx, token)
	s.logger.Info("Catalog: professional %s created", created.ID)
	return created, nil
}

// UpdateProfessional обновляет мастера и коллекцию мастеров
func (s *Service) UpdateProfessional(ctx context.Context, token, id string, input *models.ProfessionalInput) (*domain.Professional, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: professional id is required", ErrInvalidInput)
	}
	if err := validateProfessionalInput(input); err != nil {
		return nil, err
	}

	updated, err := s.client.UpdateProfessional(ctx, token, id, professionalRequest(input), imageFile(input.Image))
	if err != nil {
		s.logger.Error("Catalog: professional %s update failed: %v", id, err)
		return nil, s.mutationError(err)
	}

	s.refreshProfessionals(ctx, token)
	return updated, nil
}

// DeleteProfessional удаляет мастера и обновляет коллекцию мастеров
func (s *Service) DeleteProfessional(ctx context.Context, token, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: professional id is required", ErrInvalidInput)
	}

	if err := s.client.DeleteProfessional(ctx, token, id); err != nil {
		s.logger.Error("Catalog: professional %s delete failed: %v", id, err)
		return s.mutationError(err)
	}

	s.refreshProfessionals(ctx, token)
	s.logger.Info("Catalog: professional %s deleted", id)
	return nil
}

func (s *Service) refreshServices(ctx context.Context, token string) {
	if err := s.store.FetchServices(ctx, token); err != nil {
		s.logger.Warn("Catalog: services refresh after mutation failed: %v", err)
	}
}

func (s *Service) refreshProfessionals(ctx context.Context, token string) {
	if err := s.store.FetchProfessionals(ctx, token); err != nil {
		s.logger.Warn("Catalog: professionals refresh after mutation failed: %v", err)
	}
}

func (s *Service) mutationError(err error) error {
	switch {
	case errors.Is(err, salonapi.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, salonapi.ErrUnauthorized), errors.Is(err, salonapi.ErrForbidden):
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	case errors.Is(err, salonapi.ErrBadRequest):
		return fmt.Errorf("%w: %v", ErrBackendRejected, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

func validateServiceInput(input *models.ServiceInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if len(input.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}
	if input.Price < domain.MinServicePrice {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if input.Duration < domain.MinServiceDuration || input.Duration > domain.MaxServiceDuration {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinServiceDuration, domain.MaxServiceDuration)
	}
	if len(input.AvailableTimes) == 0 {
		return fmt.Errorf("%w: at least one available time is required", ErrInvalidInput)
	}
	for _, t := range input.AvailableTimes {
		if _, err := types.NewTimeStringFromString(t); err != nil {
			return fmt.Errorf("%w: available time %q: %v", ErrInvalidInput, t, err)
		}
	}
	return nil
}

func validateProfessionalInput(input *models.ProfessionalInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if len(input.Services) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}
	for _, id := range input.Services {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: empty service id", ErrInvalidInput)
		}
	}
	return nil
}

func serviceRequest(input *models.ServiceInput) *salonapi.ServiceRequest {
	return &salonapi.ServiceRequest{
		Name:           strings.TrimSpace(input.Name),
		Description:    strings.TrimSpace(input.Description),
		Price:          input.Price,
		Duration:       input.Duration,
		AvailableTimes: input.AvailableTimes,
		Category:       strings.TrimSpace(input.Category),
	}
}

func professionalRequest(input *models.ProfessionalInput) *salonapi.ProfessionalRequest {
	return &salonapi.ProfessionalRequest{
		Name:     strings.TrimSpace(input.Name),
		Services: input.Services,
	}
}

func imageFile(image *models.ImageInput) *salonapi.ImageFile {
	if image == nil {
		return nil
	}
	return &salonapi.ImageFile{
		Filename:    image.Filename,
		ContentType: image.ContentType,
		Data:        image.Data,
	}
}
