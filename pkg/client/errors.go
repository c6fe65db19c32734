package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/linskybing/bootcamp-go/internal/domain/submission"
)

var (
	// ErrValidation is also matched by every *submission.ValidationError.
	ErrValidation         = submission.ErrValidation
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrNetwork            = errors.New("network failure")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrInsufficientPrivilege is returned when a non-administrator logs in.
	ErrInsufficientPrivilege = fmt.Errorf("%w: administrator account required", ErrForbidden)
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	StatusCode int
	Message    string
	// Kind is the sentinel the status code maps to, nil when none applies.
	Kind   error
	Fields []submission.FieldError
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("api error: %d %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error { return e.Kind }

func kindOf(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return ErrValidation
	}
	return nil
}

type errorBody struct {
	Error  string                  `json:"error"`
	Detail json.RawMessage         `json:"detail"`
	Fields []submission.FieldError `json:"fields"`
}

// decodeError reads the error body of resp. Both {"error": "..."} and the
// {"detail": "..."} shape are understood.
func decodeError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode, Kind: kindOf(resp.StatusCode)}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil || len(raw) == 0 {
		return apiErr
	}
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		apiErr.Message = strings.TrimSpace(string(raw))
		return apiErr
	}
	apiErr.Fields = body.Fields
	switch {
	case body.Error != "":
		apiErr.Message = body.Error
	case len(body.Detail) > 0:
		var detail string
		if json.Unmarshal(body.Detail, &detail) == nil {
			apiErr.Message = detail
		} else {
			apiErr.Message = string(body.Detail)
		}
	}
	return apiErr
}

func networkError(err error) error {
	return fmt.Errorf("%w: %w", ErrNetwork, err)
}
