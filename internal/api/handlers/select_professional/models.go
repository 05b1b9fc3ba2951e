package select_professional

// SelectProfessionalRequest HTTP request model
type SelectProfessionalRequest struct {
	ProfessionalID string `json:"professionalId"`
}
