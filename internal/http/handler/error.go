package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"empdir/internal/http/middleware"
	"empdir/internal/service"
)

// errorPayload is the JSON body of every 4xx/5xx except the lookup miss.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// missingFieldError reports a form field absent from the request body.
// A present but empty field is accepted.
type missingFieldError struct {
	field string
}

func (e *missingFieldError) Error() string { return e.field + " is required" }

// writeError writes the JSON envelope. message must not carry internal details.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: middleware.RequestIDFrom(c),
		Error:     errorEnvelope{Code: code, Message: message},
	})
}

// formValue reads key from a urlencoded or multipart body and reports whether it was sent.
func formValue(c *fiber.Ctx, key string) (string, bool) {
	if args := c.Request().PostArgs(); args.Has(key) {
		return string(args.Peek(key)), true
	}
	form, err := c.MultipartForm()
	if err != nil {
		return "", false
	}
	if vs, ok := form.Value[key]; ok && len(vs) > 0 {
		return vs[0], true
	}
	return "", false
}

// requiredFields returns the values of keys in order, or a *missingFieldError for the first absent one.
func requiredFields(c *fiber.Ctx, keys ...string) ([]string, error) {
	values := make([]string, len(keys))
	for i, key := range keys {
		v, ok := formValue(c, key)
		if !ok {
			return nil, &missingFieldError{field: key}
		}
		values[i] = v
	}
	return values, nil
}

// respondError maps handler and service errors to a response.
func respondError(c *fiber.Ctx, err error) error {
	var missing *missingFieldError
	switch {
	case errors.As(err, &missing):
		return writeError(c, fiber.StatusBadRequest, "FIELD_REQUIRED", missing.Error())
	case errors.Is(err, service.ErrNotFound):
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(fiber.StatusNotFound).SendString(NotFoundBody)
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler converts errors that escape the handlers into the JSON envelope.
// That covers unknown routes and wrong methods, plus panics once the recover
// middleware has turned them into errors.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
	}
}
