package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/pokerledger/internal/model"
	"github.com/mcoot/pokerledger/internal/services/controller"
)

// Menu entries, in display order
const (
	ActionAdd     = "Add player"
	ActionRebuy   = "Rebuy"
	ActionCashOut = "Cash out"
	ActionEdit    = "Edit cash-out"
	ActionRemove  = "Remove player"
	ActionReset   = "Reset session"
	ActionQuit    = "Quit"
)

var menu = []string{ActionAdd, ActionRebuy, ActionCashOut, ActionEdit, ActionRemove, ActionReset, ActionQuit}

// Loop drives a session from the terminal until the user quits
type Loop struct {
	controller *controller.Controller
	input      Input
	surface    *Surface
	logger     *slog.Logger
}

// NewLoop creates a Loop. The surface must already be attached to ctrl.
func NewLoop(ctrl *controller.Controller, input Input, surface *Surface, logger *slog.Logger) *Loop {
	return &Loop{
		controller: ctrl,
		input:      guardedInput{input},
		surface:    surface,
		logger:     logger.With(slog.String("component", "console")),
	}
}

// Run shows the table and handles menu choices until Quit or ctx ends
func (l *Loop) Run(ctx context.Context) error {
	l.controller.Refresh(ctx)

	for {
		choice, err := l.input.Choose(ctx, "What next?", menu)
		if err != nil {
			return err
		}
		action := menu[choice]
		if action == ActionQuit {
			return nil
		}

		if err := l.handle(ctx, action); err != nil {
			var ie *inputError
			if errors.As(err, &ie) {
				return err
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.report(action, err)
		}
	}
}

func (l *Loop) handle(ctx context.Context, action string) error {
	switch action {
	case ActionAdd:
		return l.addPlayer(ctx)
	case ActionReset:
		_, err := l.controller.RequestReset(ctx, l.input)
		return err
	}

	id, ok, err := l.pickPlayer(ctx)
	if err != nil || !ok {
		return err
	}

	switch action {
	case ActionRebuy:
		_, err = l.controller.RequestRebuy(ctx, l.input, id)
	case ActionCashOut:
		_, err = l.controller.RequestCashOut(ctx, l.input, id)
	case ActionEdit:
		err = l.editCashOut(ctx, id)
	case ActionRemove:
		_, err = l.controller.RemovePlayer(ctx, id)
	}
	return err
}

func (l *Loop) addPlayer(ctx context.Context) error {
	name, err := l.input.Text(ctx, "Player name")
	if err != nil {
		return err
	}
	buyIn, err := l.input.Text(ctx, "Buy-in")
	if err != nil {
		return err
	}
	_, err = l.controller.SubmitAddPlayer(ctx, name, buyIn)
	return err
}

// editCashOut sets a cash-out the way typing into the row's field does:
// blank clears it and anything unparseable is ignored.
func (l *Loop) editCashOut(ctx context.Context, id model.PlayerID) error {
	p, err := l.controller.Player(id)
	if err != nil {
		return err
	}
	text, err := l.input.Text(ctx, fmt.Sprintf("Cash-out for %s (blank clears)", p.Name))
	if err != nil {
		return err
	}
	applied, err := l.controller.LiveCashOut(ctx, id, text)
	if err != nil {
		return err
	}
	if !applied {
		l.surface.Warn("Cash-out unchanged")
	}
	return nil
}

func (l *Loop) pickPlayer(ctx context.Context) (model.PlayerID, bool, error) {
	players := l.controller.Session().Players
	if len(players) == 0 {
		l.surface.Warn("No players yet")
		return "", false, nil
	}

	options := make([]string, len(players))
	for i, p := range players {
		options[i] = fmt.Sprintf("%d. %s", i+1, p.Name)
	}
	i, err := l.input.Choose(ctx, "Which player?", options)
	if err != nil {
		return "", false, err
	}
	return players[i].ID, true, nil
}

func (l *Loop) report(action string, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidName):
		l.surface.Warn("A player needs a name")
	case errors.Is(err, model.ErrInvalidAmount):
		l.surface.Warn("Enter an amount of zero or more")
	case errors.Is(err, model.ErrPlayerNotFound):
		l.surface.Warn("That player is no longer in the session")
	default:
		l.logger.Error("action failed", slog.String("action", action), slog.String("error", err.Error()))
		l.surface.Error("Could not save session")
	}
}

// inputError is a failure to read from the user. It ends the loop.
type inputError struct {
	err error
}

func (e *inputError) Error() string {
	return "reading input: " + e.err.Error()
}

func (e *inputError) Unwrap() error {
	return e.err
}

func wrapInput(err error) error {
	if err == nil {
		return nil
	}
	return &inputError{err: err}
}

// guardedInput tags every input failure so it can be told apart from ledger errors
type guardedInput struct {
	Input
}

func (g guardedInput) Text(ctx context.Context, title string) (string, error) {
	v, err := g.Input.Text(ctx, title)
	return v, wrapInput(err)
}

func (g guardedInput) Choose(ctx context.Context, title string, options []string) (int, error) {
	i, err := g.Input.Choose(ctx, title, options)
	return i, wrapInput(err)
}

func (g guardedInput) PromptAmount(ctx context.Context, p controller.Prompt) (string, bool, error) {
	v, ok, err := g.Input.PromptAmount(ctx, p)
	return v, ok, wrapInput(err)
}

func (g guardedInput) Confirm(ctx context.Context, message string) (bool, error) {
	ok, err := g.Input.Confirm(ctx, message)
	return ok, wrapInput(err)
}
