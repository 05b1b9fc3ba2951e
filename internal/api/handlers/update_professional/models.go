package update_professional

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/sattis-studio/booking-web/internal/api/handlers"
	catalogModels "github.com/sattis-studio/booking-web/internal/service/catalog/models"
)

const maxFormSize = 10 << 20

// ProfessionalJSONRequest HTTP request model (вариант без изображения)
type ProfessionalJSONRequest struct {
	Name     string   `json:"name"`
	Services []string `json:"services"`
}

// ParseProfessionalInput разбирает форму мастера из multipart или JSON тела
func ParseProfessionalInput(r *http.Request) (*catalogModels.ProfessionalInput, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		var req ProfessionalJSONRequest
		if err := handlers.DecodeJSON(r, &req); err != nil {
			return nil, err
		}
		return &catalogModels.ProfessionalInput{
			Name:     req.Name,
			Services: req.Services,
		}, nil
	}

	if err := r.ParseMultipartForm(maxFormSize); err != nil {
		return nil, err
	}

	input := &catalogModels.ProfessionalInput{
		Name:     r.FormValue("name"),
		Services: r.MultipartForm.Value["services"],
	}

	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		data, readErr := io.ReadAll(file)
		if readErr != nil {
			return nil, readErr
		}
		input.Image = &catalogModels.ImageInput{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		}
	case errors.Is(err, http.ErrMissingFile):
		// изображение опционально, без него остается прежнее
	default:
		return nil, err
	}

	return input, nil
}
