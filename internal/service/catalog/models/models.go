package models

import "github.com/sattis-studio/booking-web/internal/domain"

// Snapshot содержимое каталога одним ответом для фильтров и форм дашборда
type Snapshot struct {
	Services      []domain.Service
	Professionals []domain.Professional
	Categories    []domain.Category
}

// ServiceInput данные формы услуги
type ServiceInput struct {
	Name           string
	Description    string
	Price          float64
	Duration       int
	AvailableTimes []string
	Category       string
}

// ProfessionalInput данные формы мастера.
// Image не nil, когда форма пришла с загруженным изображением.
type ProfessionalInput struct {
	Name     string
	Services []string
	Image    *ImageInput
}

// ImageInput загруженное изображение мастера
type ImageInput struct {
	Filename    string
	ContentType string
	Data        []byte
}
