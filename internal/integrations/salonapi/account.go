package salonapi

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// tokenExpiryMargin запас, за который токен перевыпускается до истечения
	tokenExpiryMargin = time.Minute

	// fallbackTokenTTL срок жизни токена, если backend выдал токен без claim exp
	fallbackTokenTTL = 10 * time.Minute
)

// ServiceAccount сервисный аккаунт для фоновых операций: логинится на backend
// от имени настроенного пользователя, кэширует bearer-токен и перевыпускает его
// незадолго до истечения. Срок жизни читается из JWT claim exp без проверки
// подписи — подпись проверяет сам backend
type ServiceAccount struct {
	client   *Client
	email    string
	password string
	log      Logger

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewServiceAccount создает сервисный аккаунт с указанными учётными данными
func NewServiceAccount(client *Client, email, password string, log Logger) *ServiceAccount {
	return &ServiceAccount{
		client:   client,
		email:    email,
		password: password,
		log:      log,
	}
}

// Token возвращает действующий bearer-токен, при необходимости выполняя login
func (a *ServiceAccount) Token(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.token != "" && time.Now().Add(tokenExpiryMargin).Before(a.expiresAt) {
		return a.token, nil
	}

	result, err := a.client.Login(ctx, a.email, a.password)
	if err != nil {
		return "", fmt.Errorf("service account login failed: %w", err)
	}

	a.token = result.Token
	a.expiresAt = tokenExpiry(result.Token)
	a.log.Info("Service account token refreshed, valid until %s", a.expiresAt.Format(time.RFC3339))

	return a.token, nil
}

// Invalidate сбрасывает кэшированный токен (вызывается после 401 от backend)
func (a *ServiceAccount) Invalidate() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = ""
	a.expiresAt = time.Time{}
}

// tokenExpiry извлекает момент истечения из JWT без проверки подписи
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()

	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Now().Add(fallbackTokenTTL)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Now().Add(fallbackTokenTTL)
	}

	return exp.Time
}
