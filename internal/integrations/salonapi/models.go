package salonapi

import (
	"encoding/json"
	"fmt"

	"github.com/sattis-studio/booking-web/internal/domain"
	"github.com/sattis-studio/booking-web/pkg/types"
)

// User учётная запись администратора из backend
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResult результат аутентификации на backend
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterRequest запрос регистрации администратора
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateAppointmentRequest запрос создания записи из мастера
type CreateAppointmentRequest struct {
	CustomerName   string `json:"customerName"`
	CustomerEmail  string `json:"customerEmail"`
	CustomerPhone  string `json:"customerPhone"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	ServiceID      string `json:"serviceId"`
	ProfessionalID string `json:"professionalId"`
}

// ServiceRequest тело создания/обновления услуги
type ServiceRequest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Duration       int      `json:"duration"`
	AvailableTimes []string `json:"availableTimes"`
	Category       string   `json:"category,omitempty"`
}

// ProfessionalRequest тело создания/обновления мастера.
// При наличии изображения запрос уходит как multipart, иначе как JSON.
type ProfessionalRequest struct {
	Name     string   `json:"name"`
	Services []string `json:"services"`
}

// ImageFile изображение мастера для multipart-загрузки
type ImageFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// errorResponse модель ошибки backend
type errorResponse struct {
	Message string `json:"message"`
}

// categoryDTO wire-модель категории
type categoryDTO struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// categoryField поле category услуги: backend отдаёт либо строку-идентификатор,
// либо вложенный объект. Разбирается в тегированный domain.CategoryRef
// на границе клиента, чтобы неоднозначность не утекала дальше.
type categoryField struct {
	ref      string
	embedded *categoryDTO
}

// UnmarshalJSON принимает обе формы поля category
func (c *categoryField) UnmarshalJSON(data []byte) error {
	var ref string
	if err := json.Unmarshal(data, &ref); err == nil {
		c.ref = ref
		c.embedded = nil
		return nil
	}

	var embedded categoryDTO
	if err := json.Unmarshal(data, &embedded); err != nil {
		return fmt.Errorf("category is neither an id nor an object: %w", err)
	}
	c.embedded = &embedded
	return nil
}

// serviceDTO wire-модель услуги
type serviceDTO struct {
	ID             string         `json:"_id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Price          float64        `json:"price"`
	Duration       int            `json:"duration"`
	AvailableTimes []string       `json:"availableTimes"`
	Category       *categoryField `json:"category,omitempty"`
}

// professionalDTO wire-модель мастера
type professionalDTO struct {
	ID       string       `json:"_id"`
	Name     string       `json:"name"`
	Image    string       `json:"image,omitempty"`
	Services []serviceDTO `json:"services"`
}

// appointmentDTO wire-модель записи: услуга и мастер приходят вложенными
// объектами в полях serviceId/professionalId
type appointmentDTO struct {
	ID            string          `json:"_id"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	Status        string          `json:"status"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	CustomerPhone string          `json:"customerPhone"`
	IsMissed      bool            `json:"isMissed"`
	Service       serviceDTO      `json:"serviceId"`
	Professional  professionalDTO `json:"professionalId"`
}

// missedStatusDTO ответ запроса агрегата пропусков клиента
type missedStatusDTO struct {
	IsMissed bool `json:"isMissed"`
}

// Конвертация wire-моделей в доменные

func (d *serviceDTO) toDomain() domain.Service {
	times := make([]types.TimeString, 0, len(d.AvailableTimes))
	for _, t := range d.AvailableTimes {
		times = append(times, types.TimeString(t))
	}

	svc := domain.Service{
		ID:             d.ID,
		Name:           d.Name,
		Description:    d.Description,
		Price:          d.Price,
		Duration:       d.Duration,
		AvailableTimes: times,
	}

	if d.Category != nil {
		ref := &domain.CategoryRef{ID: d.Category.ref}
		if d.Category.embedded != nil {
			ref.Embedded = &domain.Category{
				ID:   d.Category.embedded.ID,
				Name: d.Category.embedded.Name,
			}
			ref.ID = d.Category.embedded.ID
		}
		svc.Category = ref
	}

	return svc
}

func (d *professionalDTO) toDomain() domain.Professional {
	services := make([]domain.Service, 0, len(d.Services))
	for i := range d.Services {
		services = append(services, d.Services[i].toDomain())
	}

	return domain.Professional{
		ID:       d.ID,
		Name:     d.Name,
		ImageURL: d.Image,
		Services: services,
	}
}

func (d *appointmentDTO) toDomain() domain.Appointment {
	return domain.Appointment{
		ID:            d.ID,
		Date:          d.Date,
		Time:          types.TimeString(d.Time),
		Status:        domain.AppointmentStatus(d.Status),
		CustomerName:  d.CustomerName,
		CustomerEmail: d.CustomerEmail,
		CustomerPhone: d.CustomerPhone,
		IsMissed:      d.IsMissed,
		Service:       d.Service.toDomain(),
		Professional:  d.Professional.toDomain(),
	}
}

func servicesToDomain(dtos []serviceDTO) []domain.Service {
	out := make([]domain.Service, 0, len(dtos))
	for i := range dtos {
		out = append(out, dtos[i].toDomain())
	}
	return out
}

func professionalsToDomain(dtos []professionalDTO) []domain.Professional {
	out := make([]domain.Professional, 0, len(dtos))
	for i := range dtos {
		out = append(out, dtos[i].toDomain())
	}
	return out
}

func appointmentsToDomain(dtos []appointmentDTO) []domain.Appointment {
	out := make([]domain.Appointment, 0, len(dtos))
	for i := range dtos {
		out = append(out, dtos[i].toDomain())
	}
	return out
}

func categoriesToDomain(dtos []categoryDTO) []domain.Category {
	out := make([]domain.Category, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, domain.Category{ID: d.ID, Name: d.Name})
	}
	return out
}
