package salonapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"

	"github.com/sattis-studio/booking-web/internal/domain"
)

// ListServices выполняет GET /services
// Операция публична: токен прикладывается только если задан
func (c *Client) ListServices(ctx context.Context, token string) ([]domain.Service, error) {
	req, err := c.newJSONRequest(ctx, http.MethodGet, "/services", token, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do("list_services", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := authStatusError(resp); err != nil {
		return nil, err
	}

	var dtos []serviceDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("%w: failed to decode services: %v", ErrInvalidResponse, err)
	}

	return servicesToDomain(dtos), nil
}

// ListProfessionals выполняет GET /professionals
func (c *Client) ListProfessionals(ctx context.Context, token string) ([]domain.Professional, error) {
	req, err := c.newJSONRequest(ctx, http.MethodGet, "/professionals", token, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do("list_professionals", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := authStatusError(resp); err != nil {
		return nil, err
	}

	var dtos []professionalDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("%w: failed to decode professionals: %v", ErrInvalidResponse, err)
	}

	return professionalsToDomain(dtos), nil
}

// ListCategories выполняет GET /categories
func (c *Client) ListCategories(ctx context.Context, token string) ([]domain.Category, error) {
	req, err := c.newJSONRequest(ctx, http.MethodGet, "/categories", token, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do("list_categories", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := authStatusError(resp); err != nil {
		return nil, err
	}

	var dtos []categoryDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("%w: failed to decode categories: %v", ErrInvalidResponse, err)
	}

	return categoriesToDomain(dtos), nil
}

// CreateService выполняет POST /services
func (c *Client) CreateService(ctx context.Context, token string, svc *ServiceRequest) (*domain.Service, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/services", token, svc)
	if err != nil {
		return nil, err
	}
	return c.doServiceMutation("create_service", req)
}

// UpdateService выполняет PUT /service/{id}
func (c *Client) UpdateService(ctx context.Context, token, id string, svc *ServiceRequest) (*domain.Service, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPut, "/service/"+url.PathEscape(id), token, svc)
	if err != nil {
		return nil, err
	}
	return c.doServiceMutation("update_service", req)
}

// DeleteService выполняет DELETE /service/{id}
func (c *Client) DeleteService(ctx context.Context, token, id string) error {
	req, err := c.newJSONRequest(ctx, http.MethodDelete, "/service/"+url.PathEscape(id), token, nil)
	if err != nil {
		return err
	}

	resp, err := c.do("delete_service", req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return authStatusError(resp)
}

// CreateProfessional выполняет POST /professionals
// С изображением запрос уходит как multipart/form-data, без него как JSON
func (c *Client) CreateProfessional(ctx context.Context, token string, pro *ProfessionalRequest, image *ImageFile) (*domain.Professional, error) {
	req, err := c.newProfessionalRequest(ctx, http.MethodPost, "/professionals", token, pro, image)
	if err != nil {
		return nil, err
	}
	return c.doProfessionalMutation("create_professional", req)
}

// UpdateProfessional выполняет PUT /professional/{id}
func (c *Client) UpdateProfessional(ctx context.Context, token, id string, pro *ProfessionalRequest, image *ImageFile) (*domain.Professional, error) {
	req, err := c.newProfessionalRequest(ctx, http.MethodPut, "/professional/"+url.PathEscape(id), token, pro, image)
	if err != nil {
		return nil, err
	}
	return c.doProfessionalMutation("update_professional", req)
}

// DeleteProfessional выполняет DELETE /professional/{id}
func (c *Client) DeleteProfessional(ctx context.Context, token, id string) error {
	req, err := c.newJSONRequest(ctx, http.MethodDelete, "/professional/"+url.PathEscape(id), token, nil)
	if err != nil {
		return err
	}

	resp, err := c.do("delete_professional", req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return authStatusError(resp)
}

// doServiceMutation выполняет мутацию услуги и декодирует результат
func (c *Client) doServiceMutation(operation string, req *http.Request) (*domain.Service, error) {
	resp, err := c.do(operation, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := authStatusError(resp); err != nil {
		return nil, err
	}

	var dto serviceDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("%w: failed to decode service: %v", ErrInvalidResponse, err)
	}

	svc := dto.toDomain()
	return &svc, nil
}

// doProfessionalMutation выполняет мутацию мастера и декодирует результат
func (c *Client) doProfessionalMutation(operation string, req *http.Request) (*domain.Professional, error) {
	resp, err := c.do(operation, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := authStatusError(resp); err != nil {
		return nil, err
	}

	var dto professionalDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("%w: failed to decode professional: %v", ErrInvalidResponse, err)
	}

	pro := dto.toDomain()
	return &pro, nil
}

// newProfessionalRequest собирает запрос мутации мастера: multipart при
// наличии изображения, иначе обычный JSON
func (c *Client) newProfessionalRequest(ctx context.Context, method, path, token string, pro *ProfessionalRequest, image *ImageFile) (*http.Request, error) {
	if image == nil {
		return c.newJSONRequest(ctx, method, path, token, pro)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("name", pro.Name); err != nil {
		return nil, fmt.Errorf("%w: failed to write multipart field: %v", ErrInternal, err)
	}
	for _, serviceID := range pro.Services {
		if err := writer.WriteField("services", serviceID); err != nil {
			return nil, fmt.Errorf("%w: failed to write multipart field: %v", ErrInternal, err)
		}
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, image.Filename))
	contentType := image.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create multipart file part: %v", ErrInternal, err)
	}
	if _, err := part.Write(image.Data); err != nil {
		return nil, fmt.Errorf("%w: failed to write image data: %v", ErrInternal, err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%w: failed to finalize multipart body: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}
