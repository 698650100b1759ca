package controller

import (
	"context"

	"github.com/mcoot/pokerledger/internal/model"
)

// Prompter asks the user for input and waits for the answer.
// Dialogs have no timeout; only ctx ends the wait.
type Prompter interface {
	// PromptAmount shows p and returns the entered text, or ok=false if dismissed
	PromptAmount(ctx context.Context, p Prompt) (value string, ok bool, err error)
	// Confirm asks a yes/no question
	Confirm(ctx context.Context, message string) (bool, error)
}

// RequestRebuy runs the whole rebuy dialog through a prompter
func (c *Controller) RequestRebuy(ctx context.Context, prompter Prompter, id model.PlayerID) (bool, error) {
	p, err := c.RebuyPrompt(id)
	if err != nil {
		return false, err
	}
	return c.runDialog(ctx, prompter, p, c.CloseRebuyDialog)
}

// RequestCashOut runs the whole cash-out dialog through a prompter
func (c *Controller) RequestCashOut(ctx context.Context, prompter Prompter, id model.PlayerID) (bool, error) {
	p, err := c.CashOutPrompt(id)
	if err != nil {
		return false, err
	}
	return c.runDialog(ctx, prompter, p, c.CloseCashOutDialog)
}

// RequestReset asks for confirmation and resets only on a yes
func (c *Controller) RequestReset(ctx context.Context, prompter Prompter) (bool, error) {
	ok, err := prompter.Confirm(ctx, ResetConfirmMessage)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := c.Reset(ctx, true); err != nil {
		return true, err
	}
	return true, nil
}

type closeFunc func(ctx context.Context, id model.PlayerID, result DialogResult) (bool, error)

func (c *Controller) runDialog(ctx context.Context, prompter Prompter, p Prompt, finish closeFunc) (bool, error) {
	value, ok, err := prompter.PromptAmount(ctx, p)
	if err != nil {
		return false, err
	}
	if !ok {
		return finish(ctx, p.PlayerID, Cancelled)
	}
	return finish(ctx, p.PlayerID, Confirm(value))
}
