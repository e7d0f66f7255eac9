package proxy

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// Client-facing validation messages.
const (
	msgMethodNotAllowed      = "Method not allowed"
	msgMissingRequiredFields = "Missing required fields"
	msgUnsupportedProvider   = "Unsupported provider"
	msgInvalidBody           = "Invalid request body"
)

// ValidationError is a client error detected before any upstream call.
type ValidationError struct {
	Status  int
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(status int, msg string) *ValidationError {
	return &ValidationError{Status: status, Message: msg}
}

var (
	errMethodNotAllowed      = newValidationError(fiber.StatusMethodNotAllowed, msgMethodNotAllowed)
	errMissingRequiredFields = newValidationError(fiber.StatusBadRequest, msgMissingRequiredFields)
	errUnsupportedProvider   = newValidationError(fiber.StatusBadRequest, msgUnsupportedProvider)
	errInvalidBody           = newValidationError(fiber.StatusBadRequest, msgInvalidBody)
)

// UpstreamError is a non-2xx response from the provider. Its status and body
// are relayed to the client unchanged.
type UpstreamError struct {
	Provider string
	Status   int
	Body     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("API request failed: %d - %s", e.Status, e.Body)
}

// redactTransportError strips the query string from any URL embedded in err.
// Google carries the caller's API key as a query parameter, and net/http
// includes the full request URL in its transport errors.
func redactTransportError(err error) error {
	var uerr *url.Error
	if !errors.As(err, &uerr) {
		return err
	}

	if u, perr := url.Parse(uerr.URL); perr == nil {
		u.RawQuery = ""
		u.User = nil
		uerr.URL = u.String()
	} else {
		uerr.URL = "<redacted>"
	}
	return err
}
