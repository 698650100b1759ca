package console

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/pterm/pterm"

	"github.com/mcoot/pokerledger/internal/services/controller"
)

// ErrNoChoice is returned when a selection has nothing to choose from
var ErrNoChoice = errors.New("nothing to choose from")

// Input is everything the interactive loop asks of the user
type Input interface {
	controller.Prompter
	// Text asks for a free-form line
	Text(ctx context.Context, title string) (string, error)
	// Choose returns the index of the picked option
	Choose(ctx context.Context, title string, options []string) (int, error)
}

// Prompter reads answers from the terminal with pterm's interactive printers
type Prompter struct {
	textInput func(title, initial string) (string, error)
	confirm   func(message string) (bool, error)
	choose    func(title string, options []string) (string, error)
}

var _ Input = (*Prompter)(nil)

// NewPrompter creates a Prompter bound to the terminal
func NewPrompter() *Prompter {
	return &Prompter{
		textInput: func(title, initial string) (string, error) {
			return pterm.DefaultInteractiveTextInput.
				WithDefaultText(title).
				WithDefaultValue(initial).
				Show()
		},
		confirm: func(message string) (bool, error) {
			return pterm.DefaultInteractiveConfirm.
				WithDefaultText(message).
				WithDefaultValue(false).
				Show()
		},
		choose: func(title string, options []string) (string, error) {
			return pterm.DefaultInteractiveSelect.
				WithDefaultText(title).
				WithOptions(options).
				WithMaxHeight(len(options)).
				Show()
		},
	}
}

// PromptAmount asks for an amount. A blank answer dismisses the dialog.
func (p *Prompter) PromptAmount(ctx context.Context, prompt controller.Prompt) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	value, err := p.textInput(prompt.Title+" (blank to cancel)", prompt.Initial)
	if err != nil {
		return "", false, err
	}
	if strings.TrimSpace(value) == "" {
		return "", false, nil
	}
	return value, true, nil
}

// Confirm asks a yes/no question, defaulting to no
func (p *Prompter) Confirm(ctx context.Context, message string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return p.confirm(message)
}

// Text asks for a line of text
func (p *Prompter) Text(ctx context.Context, title string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return p.textInput(title, "")
}

// Choose shows options and returns the picked index
func (p *Prompter) Choose(ctx context.Context, title string, options []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}
	if len(options) == 0 {
		return -1, ErrNoChoice
	}
	picked, err := p.choose(title, options)
	if err != nil {
		return -1, err
	}
	i := slices.Index(options, picked)
	if i < 0 {
		return -1, ErrNoChoice
	}
	return i, nil
}
