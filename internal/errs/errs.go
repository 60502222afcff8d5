// Package errs описывает ошибки, которые контроллеры отдают клиенту.
package errs

import (
	"net/http"
	"strings"
)

// FieldError - ошибка валидации конкретного поля запроса
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError - ошибка с HTTP статусом и телом ответа
type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Status  int          `json:"-"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is сравнивает по статусу и коду: errors.Is(err, errs.NewNotFoundError(""))
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	return ok && t.Status == e.Status && t.Code == e.Code
}

// NewBadRequestError создает ошибку 400
func NewBadRequestError(message string, fields ...FieldError) *HTTPError {
	return newHTTPError(http.StatusBadRequest, message, fields)
}

// NewNotFoundError создает ошибку 404
func NewNotFoundError(message string) *HTTPError {
	return newHTTPError(http.StatusNotFound, message, nil)
}

// NewInternalServerError создает ошибку 500 без подробностей: внутренняя
// причина только логируется.
func NewInternalServerError() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), nil)
}

func newHTTPError(status int, message string, fields []FieldError) *HTTPError {
	return &HTTPError{
		Code:    codeFromStatus(status),
		Message: message,
		Status:  status,
		Errors:  fields,
	}
}

// codeFromStatus: 400 -> "BAD_REQUEST"
func codeFromStatus(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}
