package cli

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player commands",
		Long: `Player commands take a player as either its id or its 1-based
position in the table, as shown by "session show".`,
	}

	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerShowCmd())
	cmd.AddCommand(newPlayerRebuyCmd())
	cmd.AddCommand(newPlayerCashOutCmd())
	cmd.AddCommand(newPlayerRemoveCmd())

	return cmd
}

func newPlayerAddCmd() *cobra.Command {
	var name string
	var buyIn float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Seat a player with their first buy-in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			req := map[string]any{"name": name, "buy_in": buyIn}
			var result Player

			if err := client.Post("/players", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().Float64Var(&buyIn, "buy-in", 0, "Initial buy-in (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("buy-in")

	return cmd
}

func newPlayerShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <player>",
		Short: "Show one player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolvePlayer(args[0])
			if err != nil {
				return err
			}

			var result Player
			if err := client.Get(playerPath(id), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newPlayerRebuyCmd() *cobra.Command {
	var amount float64

	cmd := &cobra.Command{
		Use:   "rebuy <player>",
		Short: "Record a rebuy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolvePlayer(args[0])
			if err != nil {
				return err
			}

			var result Player
			if err := client.Post(playerPath(id)+"/rebuys", map[string]float64{"amount": amount}, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "Rebuy amount (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newPlayerCashOutCmd() *cobra.Command {
	var amount float64
	var clearCashOut bool

	cmd := &cobra.Command{
		Use:   "cashout <player>",
		Short: "Set a player's cash-out, or clear it with --clear",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amountSet := cmd.Flags().Changed("amount")
			if amountSet == clearCashOut {
				return errors.New("exactly one of --amount or --clear is required")
			}

			id, err := resolvePlayer(args[0])
			if err != nil {
				return err
			}

			req := map[string]*float64{"amount": nil}
			if amountSet {
				req["amount"] = &amount
			}

			var result Player
			if err := client.Put(playerPath(id)+"/cashout", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "Cash-out amount")
	cmd.Flags().BoolVar(&clearCashOut, "clear", false, "Clear the cash-out and return the player to play")

	return cmd
}

func newPlayerRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <player>",
		Short: "Remove a player and everything recorded for them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolvePlayer(args[0])
			if err != nil {
				return err
			}

			if err := client.Delete(playerPath(id)); err != nil {
				return err
			}

			output(cmd).PrintMessage("Player removed")
			return nil
		},
	}
}

// resolvePlayer turns a table position into a player id. Anything else is taken as an id.
func resolvePlayer(arg string) (string, error) {
	pos, err := strconv.Atoi(arg)
	if err != nil {
		return arg, nil
	}

	var session Session
	if err := client.Get("/session", &session); err != nil {
		return "", err
	}
	if pos < 1 || pos > len(session.Players) {
		return "", fmt.Errorf("no player at position %d", pos)
	}
	return session.Players[pos-1].ID, nil
}

func playerPath(id string) string {
	return "/players/" + url.PathEscape(id)
}
