package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

func createGetIssueTool() mcp.Tool {
	return mcp.NewTool("get_issue",
		mcp.WithDescription("Get a Jira issue by its key (e.g., PROJ-123)"),
		mcp.WithString("issue_key", mcp.Required(), mcp.Description("The issue key (e.g., PROJ-123)")),
	)
}

func createSearchIssuesTool() mcp.Tool {
	return mcp.NewTool("search_issues",
		mcp.WithDescription("Search Jira issues using JQL (Jira Query Language)"),
		mcp.WithString("jql", mcp.Required(), mcp.Description("JQL query string")),
		mcp.WithNumber("max_results", mcp.Description("Maximum results to return (default: 50)")),
	)
}

func createCreateIssueTool() mcp.Tool {
	return mcp.NewTool("create_issue",
		mcp.WithDescription("Create a new Jira issue"),
		mcp.WithString("project_key", mcp.Required(), mcp.Description("Project key (e.g., PROJ)")),
		mcp.WithString("summary", mcp.Required(), mcp.Description("Issue summary/title")),
		mcp.WithString("issue_type", mcp.Required(), mcp.Description("Issue type (e.g., Bug, Task, Story)")),
		mcp.WithString("description", mcp.Description("Issue description")),
	)
}

func createUpdateIssueTool() mcp.Tool {
	return mcp.NewTool("update_issue",
		mcp.WithDescription("Update fields of an existing Jira issue"),
		mcp.WithString("issue_key", mcp.Required(), mcp.Description("The issue key (e.g., PROJ-123)")),
		mcp.WithObject("fields", mcp.Required(), mcp.Description("Fields to update")),
	)
}

func createAddCommentTool() mcp.Tool {
	return mcp.NewTool("add_comment",
		mcp.WithDescription("Add a comment to a Jira issue"),
		mcp.WithString("issue_key", mcp.Required(), mcp.Description("The issue key (e.g., PROJ-123)")),
		mcp.WithString("comment", mcp.Required(), mcp.Description("Comment text")),
	)
}

func createGetCommentsTool() mcp.Tool {
	return mcp.NewTool("get_comments",
		mcp.WithDescription("Get comments on a Jira issue"),
		mcp.WithString("issue_key", mcp.Required(), mcp.Description("The issue key (e.g., PROJ-123)")),
		mcp.WithNumber("start_at", mcp.Description("Index of the first comment to return (default: 0)")),
		mcp.WithNumber("max_results", mcp.Description("Maximum comments to return (default: 50)")),
	)
}

func createGetProjectsTool() mcp.Tool {
	return mcp.NewTool("get_projects",
		mcp.WithDescription("Get all accessible Jira projects"),
	)
}

func createTransitionIssueTool() mcp.Tool {
	return mcp.NewTool("transition_issue",
		mcp.WithDescription("Transition an issue to a new status"),
		mcp.WithString("issue_key", mcp.Required(), mcp.Description("The issue key (e.g., PROJ-123)")),
		mcp.WithString("transition_id", mcp.Required(), mcp.Description("Transition ID")),
	)
}

func createGetTransitionsTool() mcp.Tool {
	return mcp.NewTool("get_transitions",
		mcp.WithDescription("Get available transitions for an issue"),
		mcp.WithString("issue_key", mcp.Required(), mcp.Description("The issue key (e.g., PROJ-123)")),
	)
}
