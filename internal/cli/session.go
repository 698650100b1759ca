package cli

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mcoot/pokerledger/internal/services/controller"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session commands",
	}

	cmd.AddCommand(newSessionShowCmd())
	cmd.AddCommand(newSessionSummaryCmd())
	cmd.AddCommand(newSessionResetCmd())

	return cmd
}

func newSessionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show every player and the session summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Get("/session", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newSessionSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the session totals and discrepancy",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Summary

			if err := client.Get("/summary", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newSessionResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard every player and start a new session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				confirmed, err := pterm.DefaultInteractiveConfirm.
					WithDefaultText(controller.ResetConfirmMessage).
					WithDefaultValue(false).
					Show()
				if err != nil {
					return fmt.Errorf("failed to read confirmation: %w", err)
				}
				if !confirmed {
					output(cmd).PrintMessage("Reset cancelled")
					return nil
				}
			}

			var result Session
			if err := client.Post("/session/reset", map[string]bool{"confirm": true}, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
