package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ldi/tasklist/internal/dom"
	"github.com/ldi/tasklist/pkg/models"
)

// Dispatcher runs fn on the thread that owns the page.
type Dispatcher interface {
	Do(ctx context.Context, fn func()) error
}

// NewServer creates a new MCP server driving the task page.
func NewServer(page *dom.TaskPage, dispatcher Dispatcher, version string) *server.MCPServer {
	s := server.NewMCPServer("Tasklist", version)

	s.AddTool(mcp.NewTool("add_task",
		mcp.WithDescription("Type a task into the input field and press Add. Empty or whitespace-only text is rejected."),
		mcp.WithString("text", mcp.Description("Task text"), mcp.Required()),
	), addTaskHandler(page, dispatcher))

	s.AddTool(mcp.NewTool("delete_task",
		mcp.WithDescription("Click the trash icon of a task entry."),
		mcp.WithString("id", mcp.Description("Entry id as returned by list_tasks"), mcp.Required()),
	), deleteTaskHandler(page, dispatcher))

	s.AddTool(mcp.NewTool("list_tasks",
		mcp.WithDescription("List the task entries in display order."),
	), listTasksHandler(page, dispatcher))

	s.AddTool(mcp.NewTool("get_status",
		mcp.WithDescription("Get the error message area."),
	), getStatusHandler(page, dispatcher))

	return s
}

// Serve runs the MCP server over the given stdio streams until ctx is done
// or in is closed.
func Serve(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	return server.NewStdioServer(s).Listen(ctx, in, out)
}

func addTaskHandler(page *dom.TaskPage, dispatcher Dispatcher) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text := mcp.ParseString(request, "text", "")

		var (
			rejected bool
			message  string
			count    int
		)
		err := dispatcher.Do(ctx, func() {
			page.Input.SetValue(text)
			page.Submit.Activate()
			rejected = page.Status.Visible()
			message = page.Status.Text()
			count = len(page.List.Items())
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if rejected {
			return mcp.NewToolResultError(message), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Task added. The list now has %d entries.", count)), nil
	}
}

func deleteTaskHandler(page *dom.TaskPage, dispatcher Dispatcher) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := mcp.ParseString(request, "id", "")

		var lookupErr error
		err := dispatcher.Do(ctx, func() {
			item, err := page.List.Item(id)
			if err != nil {
				lookupErr = err
				return
			}
			item.Trash().Activate()
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if lookupErr != nil {
			return mcp.NewToolResultError(lookupErr.Error()), nil
		}

		return mcp.NewToolResultText("Task deleted successfully"), nil
	}
}

func listTasksHandler(page *dom.TaskPage, dispatcher Dispatcher) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var entries []models.TaskEntry
		if err := dispatcher.Do(ctx, func() { entries = page.List.Entries() }); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		data, err := json.Marshal(map[string]any{"tasks": entries})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

func getStatusHandler(page *dom.TaskPage, dispatcher Dispatcher) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var status models.StatusView
		if err := dispatcher.Do(ctx, func() { status = page.Status.View() }); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		data, err := json.Marshal(status)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}
