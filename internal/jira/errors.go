package jira

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// APIError is a non-2xx response from the Jira API. Detail carries the
// messages Jira put in the response body, when it sent any.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("jira returned %d", e.StatusCode)
	}
	return fmt.Sprintf("jira returned %d: %s", e.StatusCode, e.Detail)
}

// newAPIError builds an APIError from a response body. Jira error bodies
// carry "errorMessages" (global) and "errors" (per-field); anything else
// is kept verbatim.
func newAPIError(statusCode int, body []byte) *APIError {
	detail := strings.TrimSpace(string(body))

	var payload struct {
		ErrorMessages []string          `json:"errorMessages"`
		Errors        map[string]string `json:"errors"`
	}
	if json.Unmarshal(body, &payload) == nil {
		parts := append([]string{}, payload.ErrorMessages...)

		keys := make([]string, 0, len(payload.Errors))
		for k := range payload.Errors {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s: %s", k, payload.Errors[k]))
		}

		if len(parts) > 0 {
			detail = strings.Join(parts, "; ")
		}
	}

	return &APIError{StatusCode: statusCode, Detail: detail}
}
