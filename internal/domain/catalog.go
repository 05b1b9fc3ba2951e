package domain

import "github.com/sattis-studio/booking-web/pkg/types"

// Service represents a bookable salon service
type Service struct {
	ID             string
	Name           string
	Description    string
	Price          float64
	Duration       int // minutes
	AvailableTimes []types.TimeString
	Category       *CategoryRef
}

// HasTime returns true if the slot is in the service's configured time set
func (s *Service) HasTime(t types.TimeString) bool {
	for _, slot := range s.AvailableTimes {
		if slot == t {
			return true
		}
	}
	return false
}

// Professional represents a salon professional offering a subset of services
type Professional struct {
	ID       string
	Name     string
	ImageURL string
	Services []Service
}

// Offers returns true if the professional offers the given service
func (p *Professional) Offers(serviceID string) bool {
	for _, s := range p.Services {
		if s.ID == serviceID {
			return true
		}
	}
	return false
}

// Category groups services
type Category struct {
	ID   string
	Name string
}

// CategoryRef is the resolved form of the backend's category field, which
// arrives either as a bare id or as an embedded object. Exactly one side is
// meaningful: Embedded when the backend inlined the category, otherwise ID.
type CategoryRef struct {
	ID       string
	Embedded *Category
}

// CategoryID returns the referenced category id regardless of representation
func (r *CategoryRef) CategoryID() string {
	if r.Embedded != nil {
		return r.Embedded.ID
	}
	return r.ID
}

// Name returns the category name when it is known client-side
func (r *CategoryRef) Name() string {
	if r.Embedded != nil {
		return r.Embedded.Name
	}
	return ""
}
