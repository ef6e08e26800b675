package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ApiError is a server-rejected request: a response was received but
// carried an error status. The message is whatever the backend put in its
// error body, decoded best-effort.
type ApiError struct {
	StatusCode int
	Message    string
}

func (e *ApiError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: server rejected request (%d %s)", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("api: %s (%d)", e.Message, e.StatusCode)
}

// The backend reports errors as {"detail": "..."}, {"error": "..."} or a
// field->messages map from form validation. Try each shape in turn.
func decodeErrorMessage(body []byte) string {
	var withDetail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &withDetail); err == nil && withDetail.Detail != "" {
		return withDetail.Detail
	}
	var withError struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &withError); err == nil && withError.Error != "" {
		return withError.Error
	}
	var fieldErrors map[string][]string
	if err := json.Unmarshal(body, &fieldErrors); err == nil && len(fieldErrors) > 0 {
		var parts []string
		for field, messages := range fieldErrors {
			parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(messages, ", ")))
		}
		return strings.Join(parts, "; ")
	}
	return strings.TrimSpace(string(body))
}

func errorFromResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ApiError{StatusCode: resp.StatusCode}
	}
	return &ApiError{
		StatusCode: resp.StatusCode,
		Message:    decodeErrorMessage(body),
	}
}
