package handlers

import "github.com/sattis-studio/booking-web/internal/domain"

// Общие HTTP модели каталога и записей: один и тот же вид
// отдают мастер записи и дашборд, поэтому конвертеры живут здесь.

// CategoryView HTTP модель категории
type CategoryView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ServiceView HTTP модель услуги
type ServiceView struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description,omitempty"`
	Price          float64       `json:"price"`
	Duration       int           `json:"duration"`
	AvailableTimes []string      `json:"availableTimes"`
	Category       *CategoryView `json:"category,omitempty"`
}

// ProfessionalView HTTP модель мастера
type ProfessionalView struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	ImageURL string        `json:"imageUrl,omitempty"`
	Services []ServiceView `json:"services"`
}

// AppointmentView HTTP модель записи
type AppointmentView struct {
	ID             string           `json:"id"`
	Date           string           `json:"date"`
	Time           string           `json:"time"`
	Status         string           `json:"status"`
	CustomerName   string           `json:"customerName"`
	CustomerEmail  string           `json:"customerEmail"`
	CustomerPhone  string           `json:"customerPhone"`
	IsMissed       bool             `json:"isMissed"`
	CustomerMissed bool             `json:"customerMissed"`
	Service        ServiceView      `json:"service"`
	Professional   ProfessionalView `json:"professional"`
}

// FromDomainCategory конвертирует категорию в HTTP модель
func FromDomainCategory(c *domain.Category) CategoryView {
	return CategoryView{ID: c.ID, Name: c.Name}
}

// FromDomainCategories конвертирует список категорий
func FromDomainCategories(categories []domain.Category) []CategoryView {
	views := make([]CategoryView, 0, len(categories))
	for i := range categories {
		views = append(views, FromDomainCategory(&categories[i]))
	}
	return views
}

// FromDomainService конвертирует услугу в HTTP модель
func FromDomainService(s *domain.Service) ServiceView {
	times := make([]string, 0, len(s.AvailableTimes))
	for _, t := range s.AvailableTimes {
		times = append(times, t.String())
	}

	view := ServiceView{
		ID:             s.ID,
		Name:           s.Name,
		Description:    s.Description,
		Price:          s.Price,
		Duration:       s.Duration,
		AvailableTimes: times,
	}
	if s.Category != nil {
		view.Category = &CategoryView{
			ID:   s.Category.CategoryID(),
			Name: s.Category.Name(),
		}
	}
	return view
}

// FromDomainServices конвертирует список услуг
func FromDomainServices(services []domain.Service) []ServiceView {
	views := make([]ServiceView, 0, len(services))
	for i := range services {
		views = append(views, FromDomainService(&services[i]))
	}
	return views
}

// FromDomainProfessional конвертирует мастера в HTTP модель
func FromDomainProfessional(p *domain.Professional) ProfessionalView {
	return ProfessionalView{
		ID:       p.ID,
		Name:     p.Name,
		ImageURL: p.ImageURL,
		Services: FromDomainServices(p.Services),
	}
}

// FromDomainProfessionals конвертирует список мастеров
func FromDomainProfessionals(professionals []domain.Professional) []ProfessionalView {
	views := make([]ProfessionalView, 0, len(professionals))
	for i := range professionals {
		views = append(views, FromDomainProfessional(&professionals[i]))
	}
	return views
}

// FromDomainAppointment конвертирует запись в HTTP модель.
// customerMissed агрегат неявок клиента, вычисляется хранилищем.
func FromDomainAppointment(a *domain.Appointment, customerMissed bool) AppointmentView {
	return AppointmentView{
		ID:             a.ID,
		Date:           a.Date,
		Time:           a.Time.String(),
		Status:         string(a.Status),
		CustomerName:   a.CustomerName,
		CustomerEmail:  a.CustomerEmail,
		CustomerPhone:  a.CustomerPhone,
		IsMissed:       a.IsMissed,
		CustomerMissed: customerMissed,
		Service:        FromDomainService(&a.Service),
		Professional:   FromDomainProfessional(&a.Professional),
	}
}
