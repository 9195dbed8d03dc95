package commands

import (
	"context"

	"github.com/alecthomas/kingpin/v2"

	"github.com/ldi/tasklist/internal/log"
	"github.com/ldi/tasklist/internal/ui"
)

// TUICommand runs the task list in the terminal.
type TUICommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand
}

// NewTUICommand returns the tui command.
func NewTUICommand(rootCmd *RootCommand, app *kingpin.Application) *TUICommand {
	c := &TUICommand{rootCmd: rootCmd}
	c.Cmd = app.Command("tui", "Run the task list in the terminal.")
	return c
}

func (c TUICommand) Name() string { return c.Cmd.FullCommand() }

func (c TUICommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger.WithValues(log.Kv{"cmd": "tui"})
	return ui.RunTaskList(ctx, logger)
}
