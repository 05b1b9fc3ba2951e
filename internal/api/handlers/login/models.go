package login

import "github.com/sattis-studio/booking-web/internal/integrations/salonapi"

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserView HTTP модель учетной записи
type UserView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// FromLoginResult конвертирует результат сервиса в HTTP response
func FromLoginResult(result *salonapi.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token: result.Token,
		User: UserView{
			ID:    result.User.ID,
			Name:  result.User.Name,
			Email: result.User.Email,
			Role:  result.User.Role,
		},
	}
}
