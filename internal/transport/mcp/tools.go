package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	mcpmcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	projectsvc "github.com/avelar/taskhub/internal/service/project"
	tasksvc "github.com/avelar/taskhub/internal/service/task"
	usersvc "github.com/avelar/taskhub/internal/service/user"
)

// RegisterTools registers the read-only tool set on the server.
func RegisterTools(
	s *mcpserver.MCPServer,
	projects *projectsvc.Service,
	tasks *tasksvc.Service,
	users *usersvc.Service,
) {
	s.AddTool(mcpmcp.NewTool("list_projects",
		mcpmcp.WithDescription("List the team and personal projects a user belongs to, with favorite/archive flags."),
		mcpmcp.WithString("user_id", mcpmcp.Required(), mcpmcp.Description("User UUID")),
	), listProjectsHandler(users))

	s.AddTool(mcpmcp.NewTool("list_tasks",
		mcpmcp.WithDescription("List every task in a project, newest first."),
		mcpmcp.WithString("project_id", mcpmcp.Required(), mcpmcp.Description("Project UUID")),
	), listTasksHandler(tasks))

	s.AddTool(mcpmcp.NewTool("get_task",
		mcpmcp.WithDescription("Get one task with its current assignees."),
		mcpmcp.WithString("task_id", mcpmcp.Required(), mcpmcp.Description("Task UUID")),
	), getTaskHandler(tasks))

	s.AddTool(mcpmcp.NewTool("get_project",
		mcpmcp.WithDescription("Get one project's metadata."),
		mcpmcp.WithString("project_id", mcpmcp.Required(), mcpmcp.Description("Project UUID")),
	), getProjectHandler(projects))
}

func listProjectsHandler(users *usersvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		userID, err := uuid.Parse(mcpmcp.ParseString(req, "user_id", ""))
		if err != nil {
			return mcpmcp.NewToolResultText("error: invalid user_id"), nil
		}

		profile, err := users.Profile(ctx, userID)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}

		return jsonResult(map[string]interface{}{
			"team_projects":     profile.TeamProjects,
			"personal_projects": profile.PersonalProjects,
		})
	}
}

func listTasksHandler(tasks *tasksvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		projectID, err := uuid.Parse(mcpmcp.ParseString(req, "project_id", ""))
		if err != nil {
			return mcpmcp.NewToolResultText("error: invalid project_id"), nil
		}

		list, err := tasks.ListByProject(ctx, projectID)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}
		return jsonResult(list)
	}
}

func getTaskHandler(tasks *tasksvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		taskID, err := uuid.Parse(mcpmcp.ParseString(req, "task_id", ""))
		if err != nil {
			return mcpmcp.NewToolResultText("error: invalid task_id"), nil
		}

		t, assignees, err := tasks.Get(ctx, taskID)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}
		return jsonResult(map[string]interface{}{"task": t, "assignees": assignees})
	}
}

func getProjectHandler(projects *projectsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		projectID, err := uuid.Parse(mcpmcp.ParseString(req, "project_id", ""))
		if err != nil {
			return mcpmcp.NewToolResultText("error: invalid project_id"), nil
		}

		p, err := projects.GetByID(ctx, projectID)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}
		return jsonResult(p)
	}
}

func jsonResult(v interface{}) (*mcpmcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
	}
	return mcpmcp.NewToolResultText(string(data)), nil
}
