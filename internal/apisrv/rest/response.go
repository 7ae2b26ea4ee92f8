// Package rest carries the render helpers shared by the API servers.
package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/atlasdigitalize/atlas-website-backend/internal/entity"
)

type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText string `json:"status"`          // user-level status message
	Field      string `json:"field,omitempty"` // offending field for validation errors
	ErrorText  string `json:"error,omitempty"` // application-level error message, for debugging
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrValidation(ve *entity.ValidationError) render.Renderer {
	return &ErrResponse{
		Err:            ve,
		HTTPStatusCode: http.StatusUnprocessableEntity,
		StatusText:     "Validation failed.",
		Field:          ve.Field,
		ErrorText:      ve.Message,
	}
}

func ErrInternalServerError(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     http.StatusText(http.StatusInternalServerError),
	}
}

func ErrUnauthorized(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusUnauthorized,
		StatusText:     "Unauthorized.",
	}
}

// ErrNotFound deliberately carries no detail about the missing resource.
var ErrNotFound = &ErrResponse{HTTPStatusCode: http.StatusNotFound, StatusText: "Resource not found."}

// RenderError maps a domain error onto the REST taxonomy: ValidationError to
// 422 with field detail, ErrNotFound to a generic 404, anything else to 500.
func RenderError(w http.ResponseWriter, r *http.Request, err error) {
	if ve, ok := entity.AsValidationError(err); ok {
		render.Render(w, r, ErrValidation(ve))
		return
	}
	if errors.Is(err, entity.ErrNotFound) {
		render.Render(w, r, ErrNotFound)
		return
	}
	slog.Error("request failed", "path", r.URL.Path, "err", err)
	render.Render(w, r, ErrInternalServerError(err))
}

// RenderBindError maps request decoding failures: validation errors keep
// their 422 mapping, everything else (malformed JSON and the like) is a 400.
func RenderBindError(w http.ResponseWriter, r *http.Request, err error) {
	if ve, ok := entity.AsValidationError(err); ok {
		render.Render(w, r, ErrValidation(ve))
		return
	}
	render.Render(w, r, ErrInvalidRequest(err))
}
