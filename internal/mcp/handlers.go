package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sirius2k/jira-mcp/internal/jira"
)

// --- Helpers ---

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

// errorResult creates an MCP error result.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// jsonResult pretty-prints a raw Jira response as the tool result text.
func jsonResult(body []byte) *mcp.CallToolResult {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return textResult(string(body))
	}
	return textResult(buf.String())
}

// successResult reports a write operation Jira answered with no body.
func successResult(issueKey string) *mcp.CallToolResult {
	payload := struct {
		Success  bool   `json:"success"`
		IssueKey string `json:"issue_key"`
	}{Success: true, IssueKey: issueKey}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return textResult(fmt.Sprintf(`{"success": true, "issue_key": %q}`, issueKey))
	}
	return textResult(string(data))
}

// --- Handlers ---

func handleGetIssue(c *jira.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		issueKey, err := request.RequireString("issue_key")
		if err != nil || issueKey == "" {
			return errorResult("Error: issue_key parameter is required"), nil
		}

		body, err := c.GetIssue(ctx, issueKey)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleSearchIssues(c *jira.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jql, err := request.RequireString("jql")
		if err != nil || jql == "" {
			return errorResult("Error: jql parameter is required"), nil
		}
		maxResults := request.GetInt("max_results", 50)

		body, err := c.SearchIssues(ctx, jql, maxResults)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleCreateIssue(c *jira.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		projectKey, err := request.RequireString("project_key")
		if err != nil || projectKey == "" {
			return errorResult("Error: project_key parameter is required"), nil
		}
		summary, err := request.RequireString("summary")
		if err != nil || summary == "" {
			return errorResult("Error: summary parameter is required"), nil
		}
		issueType, err := request.RequireString("issue_type")
		if err != nil || issueType == "" {
			return errorResult("Error: issue_type parameter is required"), nil
		}
		description := request.GetString("description", "")

		body, err := c.CreateIssue(ctx, projectKey, summary, issueType, description)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleUpdateIssue(c *jira.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		issueKey, err := request.RequireString("issue_key")
		if err != nil || issueKey == "" {
			return errorResult("Error: issue_key parameter is required"), nil
		}

		raw, ok := request.GetArguments()["fields"]
		if !ok || raw == nil {
			return errorResult("Error: fields parameter is required"), nil
		}
		fields, ok := raw.(map[string]interface{})
		if !ok {
			return errorResult("Error: fields parameter must be an object"), nil
		}

		if err := c.UpdateIssue(ctx, issueKey, fields); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return successResult(issueKey), nil
	}
}

func handleAddComment(c *jira.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		issueKey, err := request.RequireString("issue_key")
		if err != nil || issueKey == "" {
			return errorResult("Error: issue_key parameter is required"), nil
		}
		comment, err := request.RequireString("comment")
		if err != nil || comment == "" {
			return errorResult("Error: comment parameter is required"), nil
		}

		body, err := c.AddComment(ctx, issueKey, comment)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleGetComments(c *jira.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		issueKey, err := request.RequireString("issue_key")
		if err != nil || issueKey == "" {
			return errorResult("Error: issue_key parameter is required"), nil
		}
		startAt := request.GetInt("start_at", 0)
		maxResults := request.GetInt("max_results", 50)

		body, err := c.GetComments(ctx, issueKey, startAt, maxResults)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleGetProjects(c *jira.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		body, err := c.GetProjects(ctx)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}

func handleTransitionIssue(c *jira.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		issueKey, err := request.RequireString("issue_key")
		if err != nil || issueKey == "" {
			return errorResult("Error: issue_key parameter is required"), nil
		}
		transitionID, err := request.RequireString("transition_id")
		if err != nil || transitionID == "" {
			return errorResult("Error: transition_id parameter is required"), nil
		}

		if err := c.TransitionIssue(ctx, issueKey, transitionID); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return successResult(issueKey), nil
	}
}

func handleGetTransitions(c *jira.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		issueKey, err := request.RequireString("issue_key")
		if err != nil || issueKey == "" {
			return errorResult("Error: issue_key parameter is required"), nil
		}

		body, err := c.GetTransitions(ctx, issueKey)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return jsonResult(body), nil
	}
}
