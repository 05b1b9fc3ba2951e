package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sattis-studio/booking-web/internal/integrations/salonapi"
)

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrEmailTaken возвращается, когда email уже зарегистрирован
	ErrEmailTaken = errors.New("email already registered")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// BackendClient интерфейс backend для аутентификации
type BackendClient interface {
	Login(ctx context.Context, email, password string) (*salonapi.LoginResult, error)
	Register(ctx context.Context, req *salonapi.RegisterRequest) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service тонкая прослойка аутентификации: токены выпускает backend,
// здесь только валидация входа и классификация отказов
type Service struct {
	client BackendClient
	logger Logger
}

// NewService создает новый сервис аутентификации
func NewService(client BackendClient, logger Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Login обменивает учетные данные на токен backend
func (s *Service) Login(ctx context.Context, email, password string) (*salonapi.LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	result, err := s.client.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, salonapi.ErrInvalidCredentials) || errors.Is(err, salonapi.ErrUnauthorized) {
			s.logger.Warn("Auth: login rejected for %s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Auth: login failed for %s: %v", email, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Auth: %s logged in", email)
	return result, nil
}

// Register создает учетную запись администратора
func (s *Service) Register(ctx context.Context, name, email, password string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return fmt.Errorf("%w: name, email and password are required", ErrInvalidInput)
	}

	err := s.client.Register(ctx, &salonapi.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		if errors.Is(err, salonapi.ErrBadRequest) {
			return fmt.Errorf("%w: %v", ErrEmailTaken, err)
		}
		s.logger.Error("Auth: register failed for %s: %v", email, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Auth: registered %s", email)
	return nil
}
