package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/oklog/run"

	"github.com/ldi/tasklist/internal/dom"
	"github.com/ldi/tasklist/internal/eventloop"
	"github.com/ldi/tasklist/internal/log"
	"github.com/ldi/tasklist/internal/server"
	"github.com/ldi/tasklist/internal/widget"
)

// ServeCommand serves the task page over HTTP.
type ServeCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	listenAddr      string
	shutdownTimeout time.Duration
}

// NewServeCommand returns the serve command.
func NewServeCommand(rootCmd *RootCommand, app *kingpin.Application) *ServeCommand {
	c := &ServeCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("serve", "Serve the task list page in the browser.")
	c.Cmd.Flag("listen", "HTTP listen address.").Default(":8000").StringVar(&c.listenAddr)
	c.Cmd.Flag("shutdown-timeout", "Graceful shutdown timeout.").Default("5s").DurationVar(&c.shutdownTimeout)

	return c
}

func (c ServeCommand) Name() string { return c.Cmd.FullCommand() }

func (c ServeCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger.WithValues(log.Kv{"cmd": "serve"})

	loop, err := eventloop.New(eventloop.Config{Logger: logger})
	if err != nil {
		return fmt.Errorf("could not create event loop: %w", err)
	}

	page := dom.NewTaskPage()
	if _, err := widget.Mount(page.Document, loop, logger); err != nil {
		return fmt.Errorf("could not mount task list: %w", err)
	}

	srv, err := server.NewServer(server.Config{
		Page:       page,
		Dispatcher: loop,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create web server: %w", err)
	}

	var g run.Group

	// Event loop.
	{
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		g.Add(
			func() error {
				return loop.Run(ctx)
			},
			func(_ error) {
				cancel()
			},
		)
	}

	// HTTP server.
	{
		g.Add(
			func() error {
				err := srv.Start(c.listenAddr)
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			},
			func(_ error) {
				ctx, cancel := context.WithTimeout(context.Background(), c.shutdownTimeout)
				defer cancel()
				if err := srv.Shutdown(ctx); err != nil {
					logger.Warningf("Web server shutdown: %s", err)
				}
			},
		)
	}

	// Context cancellation (from parent signal handling).
	{
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		g.Add(
			func() error {
				<-ctx.Done()
				return nil
			},
			func(_ error) {
				cancel()
			},
		)
	}

	return g.Run()
}
