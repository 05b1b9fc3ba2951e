package salonapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client клиент для работы с backend API салона.
// Backend владеет всей бизнес-логикой и хранилищем; клиент отвечает только
// за транспорт, bearer-аутентификацию и разбор wire-моделей.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsRecorder
}

// NewClient создает новый экземпляр клиента backend API
// metrics может быть nil, если метрики выключены
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics MetricsRecorder) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// Login выполняет POST /login и возвращает bearer-токен с данными пользователя
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	payload := map[string]string{"email": email, "password": password}

	req, err := c.newJSONRequest(ctx, http.MethodPost, "/login", "", payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.do("login", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrInvalidCredentials
	default:
		return nil, unexpectedStatus(resp)
	}

	var result LoginResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode login response: %v", ErrInvalidResponse, err)
	}
	if result.Token == "" {
		return nil, fmt.Errorf("%w: login response without token", ErrInvalidResponse)
	}

	return &result, nil
}

// Register выполняет POST /register
func (c *Client) Register(ctx context.Context, reg *RegisterRequest) error {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/register", "", reg)
	if err != nil {
		return err
	}

	resp, err := c.do("register", req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		return nil
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrBadRequest, backendMessage(resp))
	default:
		return unexpectedStatus(resp)
	}
}

// Внутренние помощники транспорта

// newJSONRequest собирает запрос с JSON телом и bearer-токеном (если задан)
func (c *Client) newJSONRequest(ctx context.Context, method, path, token string, payload interface{}) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to marshal request body: %v", ErrInternal, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// do выполняет запрос, фиксируя метрики и оборачивая транспортные ошибки
func (c *Client) do(operation string, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.metrics != nil {
			c.metrics.ObserveBackendRequest(operation, 0, time.Since(start))
		}
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	if c.metrics != nil {
		c.metrics.ObserveBackendRequest(operation, resp.StatusCode, time.Since(start))
	}

	return resp, nil
}

// authStatusError маппит стандартные статусы защищённых операций на sentinel-ошибки
// Возвращает nil для 2xx
func authStatusError(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrBadRequest, backendMessage(resp))
	default:
		return unexpectedStatus(resp)
	}
}

// backendMessage извлекает поле message из тела ошибки backend
func backendMessage(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(body) == 0 {
		return "no message"
	}

	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(body)
}

func unexpectedStatus(resp *http.Response) error {
	return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, backendMessage(resp))
}
