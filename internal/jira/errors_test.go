package jira

import (
	"testing"
)

func TestNewAPIError_ErrorMessages(t *testing.T) {
	body := []byte(`{"errorMessages":["The issue no longer exists."],"errors":{}}`)
	err := newAPIError(404, body)

	if err.StatusCode != 404 {
		t.Errorf("Expected status 404, got %d", err.StatusCode)
	}
	expected := "jira returned 404: The issue no longer exists."
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
}

func TestNewAPIError_FieldErrors(t *testing.T) {
	body := []byte(`{"errorMessages":[],"errors":{"summary":"Summary is required.","project":"Project is not valid."}}`)
	err := newAPIError(400, body)

	// Field errors are joined in key order
	expected := "jira returned 400: project: Project is not valid.; summary: Summary is required."
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
}

func TestNewAPIError_CombinedMessages(t *testing.T) {
	body := []byte(`{"errorMessages":["You do not have permission."],"errors":{"issuetype":"Unknown issue type."}}`)
	err := newAPIError(403, body)

	expected := "jira returned 403: You do not have permission.; issuetype: Unknown issue type."
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
}

func TestNewAPIError_NonJSONBody(t *testing.T) {
	err := newAPIError(502, []byte("Bad Gateway"))

	expected := "jira returned 502: Bad Gateway"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
}

func TestNewAPIError_EmptyBody(t *testing.T) {
	err := newAPIError(503, nil)

	expected := "jira returned 503"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
}

func TestNewAPIError_UnrelatedJSON(t *testing.T) {
	// Valid JSON without Jira error fields falls back to the raw body
	body := []byte(`{"message":"rate limit exceeded"}`)
	err := newAPIError(429, body)

	expected := `jira returned 429: {"message":"rate limit exceeded"}`
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
}
