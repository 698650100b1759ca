package controller

import (
	"context"

	"github.com/mcoot/pokerledger/internal/model"
)

// PromptKind names the amount a dialog asks for
type PromptKind string

const (
	PromptRebuy   PromptKind = "rebuy"
	PromptCashOut PromptKind = "cashout"
)

// Prompt is an open request for a single amount, scoped to one player
type Prompt struct {
	Kind       PromptKind
	PlayerID   model.PlayerID
	PlayerName string
	Title      string
	Initial    string // pre-filled field value
}

// DialogResult is how a dialog closed
type DialogResult struct {
	Confirmed bool
	Value     string
}

// Cancelled is the result of a dismissed dialog
var Cancelled = DialogResult{}

// Confirm builds a confirmed result carrying value
func Confirm(value string) DialogResult {
	return DialogResult{Confirmed: true, Value: value}
}

// RebuyPrompt opens a rebuy dialog for a player, with the amount cleared
func (c *Controller) RebuyPrompt(id model.PlayerID) (Prompt, error) {
	p, err := c.session.Player(id)
	if err != nil {
		return Prompt{}, err
	}
	return Prompt{
		Kind:       PromptRebuy,
		PlayerID:   id,
		PlayerName: p.Name,
		Title:      "Rebuy for " + p.Name,
		Initial:    "",
	}, nil
}

// CashOutPrompt opens a cash-out dialog pre-filled with the current cash-out
func (c *Controller) CashOutPrompt(id model.PlayerID) (Prompt, error) {
	p, err := c.session.Player(id)
	if err != nil {
		return Prompt{}, err
	}
	initial := ""
	if p.CashOut != nil {
		initial = model.FormatRawAmount(*p.CashOut)
	}
	return Prompt{
		Kind:       PromptCashOut,
		PlayerID:   id,
		PlayerName: p.Name,
		Title:      "Cash out " + p.Name,
		Initial:    initial,
	}, nil
}

// CloseRebuyDialog applies a confirmed rebuy. A cancelled dialog changes nothing.
func (c *Controller) CloseRebuyDialog(ctx context.Context, id model.PlayerID, result DialogResult) (bool, error) {
	if !result.Confirmed {
		return false, nil
	}
	amount, err := model.ParseNonNegativeAmount(result.Value)
	if err != nil {
		return false, err
	}
	return c.AddRebuy(ctx, id, amount)
}

// CloseCashOutDialog commits a confirmed cash-out and redraws the table.
// A cancelled dialog changes nothing.
func (c *Controller) CloseCashOutDialog(ctx context.Context, id model.PlayerID, result DialogResult) (bool, error) {
	if !result.Confirmed {
		return false, nil
	}
	amount, err := model.ParseNonNegativeAmount(result.Value)
	if err != nil {
		return false, err
	}
	return c.SetCashOut(ctx, id, &amount)
}
