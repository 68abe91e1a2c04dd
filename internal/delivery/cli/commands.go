package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ponto/internal/delivery/messages"
)

func newListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "> List all.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			records, err := app.Service.List(cmd.Context())
			if err != nil {
				app.fail(err)
				fmt.Fprintln(out, messages.Failure(err))
				return nil
			}
			for _, r := range records {
				fmt.Fprintln(out, messages.ListLine(r))
			}
			return nil
		},
	}
}

func newInsertCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "insert <entrada> <saida> <data>",
		Short: "> Insert time",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			rec, err := app.Service.Insert(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				app.fail(err)
				fmt.Fprintln(out, messages.Failure(err))
				return nil
			}
			fmt.Fprintln(out, messages.Inserted(rec))
			return nil
		},
	}
}

func newDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "> Delete by Id.",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return err
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("invalid value for 'ID': %q is not a valid integer", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			id, _ := strconv.ParseInt(args[0], 10, 64)
			deleted, err := app.Service.Delete(cmd.Context(), id)
			switch {
			case err != nil:
				app.fail(err)
				fmt.Fprintln(out, messages.Failure(err))
			case !deleted:
				fmt.Fprintln(out, messages.NotFound(id))
			default:
				fmt.Fprintln(out, messages.Deleted(id))
			}
			return nil
		},
	}
}

func newBotCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "> Run the Telegram bot.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.RunBot == nil {
				return fmt.Errorf("bot is not available in this build")
			}
			if err := app.RunBot(cmd.Context()); err != nil {
				app.fail(err)
				app.fatal = true
				fmt.Fprintln(cmd.OutOrStdout(), messages.Failure(err))
			}
			return nil
		},
	}
}
