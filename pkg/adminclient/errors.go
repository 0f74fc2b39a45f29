package adminclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrUnauthorized is matched by every APIError carrying a 401.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx answer. Detail comes from the {detail} body when the
// server sent one.
type APIError struct {
	StatusCode   int
	Detail       string
	Step         *int
	MissingSteps []int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Detail)
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

func parseAPIError(status int, body []byte) *APIError {
	var payload struct {
		Detail       string `json:"detail"`
		Step         *int   `json:"step"`
		MissingSteps []int  `json:"missing_steps"`
	}
	e := &APIError{StatusCode: status}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		e.Detail = payload.Detail
		e.Step = payload.Step
		e.MissingSteps = payload.MissingSteps
		return e
	}

	e.Detail = strings.TrimSpace(string(body))
	if e.Detail == "" || len(e.Detail) > 200 {
		e.Detail = strings.ToLower(http.StatusText(status))
	}

	return e
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}
