// Package cli is the command-line front end: list, insert, delete and bot.
package cli

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"ponto/internal/domain"
)

// Exit codes. Failures only map to a non-zero code under strict exit.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitUsage      = 2
	ExitConnection = 3
	ExitQuery      = 4
)

type App struct {
	Service    domain.AttendanceService
	Log        zerolog.Logger
	StrictExit bool
	// RunBot blocks until ctx is cancelled or the bot stops.
	RunBot func(ctx context.Context) error

	failure error
	fatal   bool
}

func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "ponto",
		Short: "> Registre suas horas extras.",
		// Usage errors only print "Error: ..." to stderr; stdout carries results.
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&app.StrictExit, "strict-exit", app.StrictExit,
		"exit non-zero when a command fails (3 connection, 4 query, 1 other)")

	root.AddCommand(
		newListCommand(app),
		newInsertCommand(app),
		newDeleteCommand(app),
		newBotCommand(app),
	)
	return root
}

// Execute runs the command line in args and returns the process exit code.
func Execute(ctx context.Context, app *App, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(app)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		return ExitUsage
	}
	return app.exitCode()
}

// fail records err as the outcome of the running command.
func (a *App) fail(err error) {
	a.failure = err
	a.Log.Debug().Err(err).Msg("command failed")
}

func (a *App) exitCode() int {
	if a.failure == nil {
		return ExitOK
	}
	if !a.StrictExit && !a.fatal {
		return ExitOK
	}
	switch domain.KindOf(a.failure) {
	case domain.ErrConnection:
		return ExitConnection
	case domain.ErrQuery:
		return ExitQuery
	default:
		return ExitFailure
	}
}
