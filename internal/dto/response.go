package dto

import (
	"net/http"

	"github.com/go-chi/render"
)

// Response is the envelope every API route answers with.
type Response struct {
	HTTPStatusCode int `json:"-"`

	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (e *Response) Render(w http.ResponseWriter, r *http.Request) error {
	if e.HTTPStatusCode != 0 {
		render.Status(r, e.HTTPStatusCode)
	}
	return nil
}

func OK(data any) render.Renderer {
	return &Response{
		HTTPStatusCode: http.StatusOK,
		Success:        true,
		Data:           data,
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return &Response{
		HTTPStatusCode: http.StatusBadRequest,
		Message:        "Invalid request",
		Error:          err.Error(),
	}
}

// ErrInternalServerError carries a fixed user facing message with the cause attached.
func ErrInternalServerError(message string, err error) render.Renderer {
	return &Response{
		HTTPStatusCode: http.StatusInternalServerError,
		Message:        message,
		Error:          err.Error(),
	}
}

func ErrUnauthorized(err error) render.Renderer {
	return &Response{
		HTTPStatusCode: http.StatusUnauthorized,
		Message:        "Unauthorized",
		Error:          err.Error(),
	}
}

func ErrForbidden(err error) render.Renderer {
	return &Response{
		HTTPStatusCode: http.StatusForbidden,
		Message:        "Forbidden",
		Error:          err.Error(),
	}
}

func ErrServiceUnavailable(err error) render.Renderer {
	return &Response{
		HTTPStatusCode: http.StatusServiceUnavailable,
		Message:        "Service unavailable",
		Error:          err.Error(),
	}
}
