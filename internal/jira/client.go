package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirius2k/jira-mcp/internal/common"
	"github.com/sirius2k/jira-mcp/internal/config"
)

const apiPrefix = "/rest/api/3"

// defaultPageSize matches the Jira REST default for paged endpoints.
const defaultPageSize = 50

// Client talks to the Jira Cloud REST API v3 using basic auth
// (account email + API token).
type Client struct {
	baseURL    string
	username   string
	apiToken   string
	httpClient *http.Client
	logger     *common.Logger
}

// NewClient creates a Jira client from settings. The base URL is
// normalized by stripping any trailing slash.
func NewClient(cfg config.JiraConfig, logger *common.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.URL, "/"),
		username: cfg.Username,
		apiToken: cfg.APIToken,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
		logger: logger,
	}
}

// BaseURL returns the normalized Jira base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetIssue fetches a single issue by key.
func (c *Client) GetIssue(ctx context.Context, issueKey string) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("%s/issue/%s", apiPrefix, url.PathEscape(issueKey)))
}

// SearchIssues runs a JQL query and returns the raw search page.
func (c *Client) SearchIssues(ctx context.Context, jql string, maxResults int) ([]byte, error) {
	if maxResults <= 0 {
		maxResults = defaultPageSize
	}
	params := url.Values{}
	params.Set("jql", jql)
	params.Set("maxResults", strconv.Itoa(maxResults))
	return c.get(ctx, fmt.Sprintf("%s/search?%s", apiPrefix, params.Encode()))
}

// CreateIssue creates an issue and returns the creation response
// (key, id, self). An empty description is omitted from the payload.
func (c *Client) CreateIssue(ctx context.Context, projectKey, summary, issueType, description string) ([]byte, error) {
	fields := map[string]interface{}{
		"project":   map[string]string{"key": projectKey},
		"summary":   summary,
		"issuetype": map[string]string{"name": issueType},
	}
	if description != "" {
		fields["description"] = TextDocument(description)
	}
	return c.post(ctx, apiPrefix+"/issue", map[string]interface{}{"fields": fields})
}

// UpdateIssue applies a partial field update. Jira answers 204 with no body.
func (c *Client) UpdateIssue(ctx context.Context, issueKey string, fields map[string]interface{}) error {
	path := fmt.Sprintf("%s/issue/%s", apiPrefix, url.PathEscape(issueKey))
	_, err := c.put(ctx, path, map[string]interface{}{"fields": fields})
	return err
}

// AddComment posts a plain-text comment wrapped in an ADF body and
// returns the created comment.
func (c *Client) AddComment(ctx context.Context, issueKey, comment string) ([]byte, error) {
	path := fmt.Sprintf("%s/issue/%s/comment", apiPrefix, url.PathEscape(issueKey))
	return c.post(ctx, path, map[string]interface{}{"body": TextDocument(comment)})
}

// GetComments fetches a page of comments for an issue.
func (c *Client) GetComments(ctx context.Context, issueKey string, startAt, maxResults int) ([]byte, error) {
	if startAt < 0 {
		startAt = 0
	}
	if maxResults <= 0 {
		maxResults = defaultPageSize
	}
	params := url.Values{}
	params.Set("startAt", strconv.Itoa(startAt))
	params.Set("maxResults", strconv.Itoa(maxResults))
	return c.get(ctx, fmt.Sprintf("%s/issue/%s/comment?%s", apiPrefix, url.PathEscape(issueKey), params.Encode()))
}

// GetProjects lists the projects visible to the authenticated account.
func (c *Client) GetProjects(ctx context.Context) ([]byte, error) {
	return c.get(ctx, apiPrefix+"/project")
}

// TransitionIssue moves an issue through a workflow transition. Jira
// answers 204 with no body.
func (c *Client) TransitionIssue(ctx context.Context, issueKey, transitionID string) error {
	path := fmt.Sprintf("%s/issue/%s/transitions", apiPrefix, url.PathEscape(issueKey))
	_, err := c.post(ctx, path, map[string]interface{}{
		"transition": map[string]string{"id": transitionID},
	})
	return err
}

// GetTransitions lists the workflow transitions currently available
// for an issue.
func (c *Client) GetTransitions(ctx context.Context, issueKey string) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("%s/issue/%s/transitions", apiPrefix, url.PathEscape(issueKey)))
}

// get performs a GET request and returns the response body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// post performs a POST request with a JSON body.
func (c *Client) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, payload)
}

// put performs a PUT request with a JSON body.
func (c *Client) put(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodPut, path, payload)
}

// do performs an HTTP request against the Jira API and returns the
// response body. Any status outside 2xx becomes an *APIError.
func (c *Client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	// Log request (Debug)
	if payload != nil {
		c.logger.Debug().
			Str("method", method).
			Str("path", path).
			Str("data", fmt.Sprintf("%v", payload)).
			Msg("Jira API Request")
	} else {
		c.logger.Debug().
			Str("method", method).
			Str("path", path).
			Msg("Jira API Request")
	}

	var bodyReader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.username, c.apiToken)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.Error().Err(err).Str("path", path).Dur("duration", duration).Msg("Jira API Request Failed")
		return nil, fmt.Errorf("jira request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// Log response (Debug)
	c.logger.Debug().
		Str("status", resp.Status).
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Msg("Jira API Response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	return body, nil
}
