package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/sleeplog/internal/cli/formatter"
	"github.com/alexanderramin/sleeplog/internal/domain"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var bed, wake timeValue

	cmd := &cobra.Command{
		Use:     "log",
		Short:   "Log a sleep session",
		Example: `  sleeplog log --bed "2024-01-10 23:00" --wake "2024-01-11 07:00"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Sleep.LogSession(cmd.Context(), bed.t, wake.t)
			if err != nil {
				return describeValidation(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessionResult("Logged", res))
			return nil
		},
	}

	cmd.Flags().Var(&bed, "bed", `Bedtime, local "YYYY-MM-DD HH:MM"`)
	cmd.Flags().Var(&wake, "wake", `Wake time, local "YYYY-MM-DD HH:MM"`)
	_ = cmd.MarkFlagRequired("bed")
	_ = cmd.MarkFlagRequired("wake")

	return cmd
}

func newEditCmd(app *App) *cobra.Command {
	var bed, wake timeValue

	cmd := &cobra.Command{
		Use:   "edit SESSION",
		Short: "Replace the bedtime and wake time of a session",
		Long: "Replace the bedtime and wake time of a session. The session keeps its ID;\n" +
			"all of its daily entries are recomputed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sessionID, err := resolveSessionID(ctx, app, args[0])
			if err != nil {
				return err
			}

			res, err := app.Sleep.EditSession(ctx, sessionID, bed.t, wake.t)
			if err != nil {
				return describeValidation(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessionResult("Updated", res))
			return nil
		},
	}

	cmd.Flags().Var(&bed, "bed", `New bedtime, local "YYYY-MM-DD HH:MM"`)
	cmd.Flags().Var(&wake, "wake", `New wake time, local "YYYY-MM-DD HH:MM"`)
	_ = cmd.MarkFlagRequired("bed")
	_ = cmd.MarkFlagRequired("wake")

	return cmd
}

// describeValidation prefixes a rejected session with the flag to fix.
func describeValidation(err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return fmt.Errorf("--%s: %w", ve.Field, err)
	}
	return err
}
