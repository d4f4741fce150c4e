package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sirius2k/jira-mcp/internal/common"
	"github.com/sirius2k/jira-mcp/internal/jira"
)

// Dispatcher routes tool calls by request name. Calls to unregistered
// names answer with plain text ("Unknown tool: <name>") rather than a
// protocol error.
type Dispatcher struct {
	logger   *common.Logger
	tools    []mcp.Tool
	handlers map[string]server.ToolHandlerFunc
}

// NewDispatcher builds a dispatcher with the full Jira tool set registered.
func NewDispatcher(client *jira.Client, logger *common.Logger) *Dispatcher {
	d := &Dispatcher{
		logger:   logger,
		handlers: make(map[string]server.ToolHandlerFunc),
	}

	d.register(createGetIssueTool(), handleGetIssue(client))
	d.register(createSearchIssuesTool(), handleSearchIssues(client))
	d.register(createCreateIssueTool(), handleCreateIssue(client))
	d.register(createUpdateIssueTool(), handleUpdateIssue(client))
	d.register(createAddCommentTool(), handleAddComment(client))
	d.register(createGetCommentsTool(), handleGetComments(client))
	d.register(createGetProjectsTool(), handleGetProjects(client))
	d.register(createTransitionIssueTool(), handleTransitionIssue(client))
	d.register(createGetTransitionsTool(), handleGetTransitions(client))

	return d
}

func (d *Dispatcher) register(tool mcp.Tool, handler server.ToolHandlerFunc) {
	d.tools = append(d.tools, tool)
	d.handlers[tool.Name] = handler
}

// Tools returns a copy of the registered tool definitions.
func (d *Dispatcher) Tools() []mcp.Tool {
	result := make([]mcp.Tool, len(d.tools))
	copy(result, d.tools)
	return result
}

// Call looks up the handler for the requested tool and runs it. Each
// call gets a correlation ID for log tracking.
func (d *Dispatcher) Call(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.Params.Name
	handler, ok := d.handlers[name]
	if !ok {
		return textResult(fmt.Sprintf("Unknown tool: %s", name)), nil
	}

	logger := d.logger.WithCorrelationId(uuid.New().String())
	logger.Debug().Str("tool", name).Msg("tool call received")

	start := time.Now()
	result, err := handler(ctx, request)

	logger.Debug().Str("tool", name).Dur("duration", time.Since(start)).Msg("tool call complete")
	return result, err
}
