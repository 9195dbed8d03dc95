package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/oklog/run"

	"github.com/ldi/tasklist/internal/dom"
	"github.com/ldi/tasklist/internal/eventloop"
	"github.com/ldi/tasklist/internal/log"
	"github.com/ldi/tasklist/internal/mcp"
	"github.com/ldi/tasklist/internal/widget"
)

// MCPCommand exposes the task list as MCP tools over stdio.
type MCPCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand
}

// NewMCPCommand returns the mcp command.
func NewMCPCommand(rootCmd *RootCommand, app *kingpin.Application) *MCPCommand {
	c := &MCPCommand{rootCmd: rootCmd}
	c.Cmd = app.Command("mcp", "Serve the task list as MCP tools on stdio.")
	return c
}

func (c MCPCommand) Name() string { return c.Cmd.FullCommand() }

func (c MCPCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger.WithValues(log.Kv{"cmd": "mcp"})

	loop, err := eventloop.New(eventloop.Config{Logger: logger})
	if err != nil {
		return fmt.Errorf("could not create event loop: %w", err)
	}

	page := dom.NewTaskPage()
	if _, err := widget.Mount(page.Document, loop, logger); err != nil {
		return fmt.Errorf("could not mount task list: %w", err)
	}

	s := mcp.NewServer(page, loop, c.rootCmd.Version)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g run.Group

	// Event loop.
	g.Add(
		func() error {
			return loop.Run(ctx)
		},
		func(_ error) {
			cancel()
		},
	)

	// MCP stdio server, returns when stdin is closed.
	g.Add(
		func() error {
			logger.Infof("MCP server listening on stdio")
			return mcp.Serve(ctx, s, c.rootCmd.Stdin, c.rootCmd.Stdout)
		},
		func(_ error) {
			cancel()
		},
	)

	return g.Run()
}
