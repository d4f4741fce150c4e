package mcp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// listTools calls tools/list on the MCPServer and returns the tools.
func listTools(t *testing.T, s *mcpserver.MCPServer) []mcpgo.Tool {
	t.Helper()

	msg := json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list","params":{}}`)
	result := s.HandleMessage(t.Context(), msg)

	resp, ok := result.(mcpgo.JSONRPCResponse)
	if !ok {
		t.Fatalf("expected JSONRPCResponse, got %T", result)
	}

	resultJSON, err := json.Marshal(resp.Result)
	if err != nil {
		t.Fatalf("failed to marshal result: %v", err)
	}

	var toolsResult mcpgo.ListToolsResult
	if err := json.Unmarshal(resultJSON, &toolsResult); err != nil {
		t.Fatalf("failed to unmarshal ListToolsResult: %v", err)
	}

	return toolsResult.Tools
}

// callTool calls a tool on the MCPServer and returns the result.
func callTool(t *testing.T, s *mcpserver.MCPServer, name string, args map[string]interface{}) *mcpgo.CallToolResult {
	t.Helper()

	params := map[string]interface{}{
		"name":      name,
		"arguments": args,
	}
	paramsJSON, _ := json.Marshal(params)

	msg := json.RawMessage(`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":` + string(paramsJSON) + `}`)
	result := s.HandleMessage(t.Context(), msg)

	resp, ok := result.(mcpgo.JSONRPCResponse)
	if !ok {
		t.Fatalf("expected JSONRPCResponse, got %T", result)
	}

	resultJSON, err := json.Marshal(resp.Result)
	if err != nil {
		t.Fatalf("failed to marshal result: %v", err)
	}

	var toolResult mcpgo.CallToolResult
	if err := json.Unmarshal(resultJSON, &toolResult); err != nil {
		t.Fatalf("failed to unmarshal CallToolResult: %v", err)
	}

	return &toolResult
}

// extractText extracts the text field from an MCP content block.
func extractText(t *testing.T, content mcpgo.Content) string {
	t.Helper()
	contentJSON, _ := json.Marshal(content)
	var tc struct {
		Text string `json:"text"`
	}
	json.Unmarshal(contentJSON, &tc)
	return tc.Text
}

func TestNewServer_ListTools(t *testing.T) {
	d := testDispatcher("http://localhost:1")
	s := NewServer(d, "jira-mcp", "0.1.0")

	tools := listTools(t, s)
	if len(tools) != 9 {
		t.Fatalf("expected 9 tools, got %d", len(tools))
	}

	names := make(map[string]bool)
	for _, tool := range tools {
		names[tool.Name] = true
	}
	for _, name := range []string{"get_issue", "search_issues", "create_issue", "update_issue",
		"add_comment", "get_comments", "get_projects", "transition_issue", "get_transitions"} {
		if !names[name] {
			t.Errorf("expected tool %s in tools/list", name)
		}
	}
}

func TestNewServer_ToolDescriptions(t *testing.T) {
	d := testDispatcher("http://localhost:1")
	s := NewServer(d, "jira-mcp", "0.1.0")

	expected := map[string]string{
		"get_issue":     "Get a Jira issue by its key (e.g., PROJ-123)",
		"search_issues": "Search Jira issues using JQL (Jira Query Language)",
		"get_projects":  "Get all accessible Jira projects",
	}

	for _, tool := range listTools(t, s) {
		want, ok := expected[tool.Name]
		if !ok {
			continue
		}
		if tool.Description != want {
			t.Errorf("tool %s: expected description %q, got %q", tool.Name, want, tool.Description)
		}
	}
}

func TestNewServer_CallTool(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"key":    "PROJ-123",
			"fields": map[string]string{"summary": "Login page crashes"},
		})
	}))
	defer mockServer.Close()

	d := testDispatcher(mockServer.URL)
	s := NewServer(d, "jira-mcp", "0.1.0")

	result := callTool(t, s, "get_issue", map[string]interface{}{"issue_key": "PROJ-123"})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", result.Content)
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected single content block, got %d", len(result.Content))
	}
	text := extractText(t, result.Content[0])
	if !strings.Contains(text, "PROJ-123") {
		t.Errorf("expected issue key in response, got %s", text)
	}
}

func TestNewServer_CallTool_MissingParameter(t *testing.T) {
	d := testDispatcher("http://localhost:1")
	s := NewServer(d, "jira-mcp", "0.1.0")

	result := callTool(t, s, "get_issue", map[string]interface{}{})
	if !result.IsError {
		t.Fatal("expected error result for missing issue_key")
	}
	text := extractText(t, result.Content[0])
	if text != "Error: issue_key parameter is required" {
		t.Errorf("expected missing parameter message, got %q", text)
	}
}

func TestNewServer_CallTool_SuccessPayload(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer mockServer.Close()

	d := testDispatcher(mockServer.URL)
	s := NewServer(d, "jira-mcp", "0.1.0")

	result := callTool(t, s, "transition_issue", map[string]interface{}{
		"issue_key":     "PROJ-123",
		"transition_id": "31",
	})
	if result.IsError {
		t.Fatalf("expected success, got error: %v", result.Content)
	}
	text := extractText(t, result.Content[0])
	if !strings.Contains(text, `"success": true`) {
		t.Errorf("expected success flag in response, got %s", text)
	}
	if !strings.Contains(text, `"issue_key": "PROJ-123"`) {
		t.Errorf("expected issue key in response, got %s", text)
	}
}
