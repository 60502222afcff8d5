package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FromBindError превращает ошибку биндинга gin в 400 с ошибками по полям
func FromBindError(err error) *HTTPError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fromDecodeError(err)
	}

	fields := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, FieldError{
			Field: strings.ToLower(fe.Field()),
			Error: describeTag(fe),
		})
	}
	return NewBadRequestError("validation failed", fields...)
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s:%s", fe.Tag(), fe.Param())
		}
		return fe.Tag()
	}
}

// fromDecodeError: текст ошибок strconv и encoding/json клиенту не отдается
func fromDecodeError(err error) *HTTPError {
	var (
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		numErr    *strconv.NumError
	)
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return NewBadRequestError(fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type),
			FieldError{Field: typeErr.Field, Error: fmt.Sprintf("must be a %s", typeErr.Type)})
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr), errors.Is(err, io.ErrUnexpectedEOF):
		return NewBadRequestError("request body must be valid JSON")
	case errors.Is(err, io.EOF):
		return NewBadRequestError("request body is required")
	case errors.As(err, &numErr):
		return NewBadRequestError(fmt.Sprintf("invalid numeric value %q", numErr.Num))
	default:
		return NewBadRequestError("could not parse request data")
	}
}
