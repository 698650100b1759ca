// Package console is the terminal rendition of the ledger: a pterm table
// kept in step with the session and pterm prompts for the dialogs.
package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/pterm/pterm"

	"github.com/mcoot/pokerledger/internal/model"
	"github.com/mcoot/pokerledger/internal/services/table"
)

var tableHeader = []string{"#", "Player", "Buy-ins", "Total in", "Cash-out", "Net"}

// Surface draws the table on a terminal
type Surface struct {
	mu     sync.Mutex
	out    io.Writer
	logger *slog.Logger
	last   table.Table
}

var _ table.Surface = (*Surface)(nil)

// NewSurface creates a Surface writing to out
func NewSurface(out io.Writer, logger *slog.Logger) *Surface {
	return &Surface{
		out:    out,
		logger: logger.With(slog.String("component", "console-surface")),
	}
}

// ShowTable redraws every row and the summary
func (s *Surface) ShowTable(ctx context.Context, t table.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = t
	s.writeTable()
	s.writeSummary(t.Summary)
}

// PatchNet updates one player's net. The terminal cannot rewrite a printed
// cell, so the new figure is printed on its own line.
func (s *Surface) PatchNet(ctx context.Context, cell table.NetCell) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := string(cell.PlayerID)
	for i := range s.last.Rows {
		if s.last.Rows[i].ID == cell.PlayerID {
			s.last.Rows[i].Net = cell
			name = s.last.Rows[i].Name
		}
	}
	s.write(pterm.Info.Sprintfln("Net for %s is now %s", name, netStyle(cell.Raw).Sprint(cell.Text)))
}

// ShowSummary redraws the summary figures
func (s *Surface) ShowSummary(ctx context.Context, sv table.SummaryView) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last.Summary = sv
	s.writeSummary(sv)
}

// Last returns the most recently drawn table
func (s *Surface) Last() table.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Warn prints a warning line
func (s *Surface) Warn(msg string) {
	s.write(pterm.Warning.Sprintln(msg))
}

// Error prints an error line
func (s *Surface) Error(msg string) {
	s.write(pterm.Error.Sprintln(msg))
}

func (s *Surface) writeTable() {
	if len(s.last.Rows) == 0 {
		s.write(pterm.Gray("No players yet") + "\n")
		return
	}

	data := pterm.TableData{tableHeader}
	for _, row := range s.last.Rows {
		cashOut := row.CashOutValue
		if row.InPlay {
			cashOut = "in play"
		}
		data = append(data, []string{
			strconv.Itoa(row.Index),
			row.Name,
			row.BuyIns,
			row.TotalIn,
			cashOut,
			netStyle(row.Net.Raw).Sprint(row.Net.Text),
		})
	}

	rendered, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		s.logger.Error("failed to render table", slog.String("error", err.Error()))
		return
	}
	s.write(rendered + "\n")
}

func (s *Surface) writeSummary(sv table.SummaryView) {
	lines := fmt.Sprintf("Net in play:       %s\nTotal cashed out:  %s\nDiscrepancy:       %s",
		sv.NetInPlay,
		sv.TotalOut,
		balanceStyle(sv.Balance).Sprint(sv.Discrepancy),
	)
	s.write(lines + "\n")
}

func (s *Surface) write(text string) {
	if _, err := io.WriteString(s.out, text); err != nil {
		s.logger.Warn("failed to write to terminal", slog.String("error", err.Error()))
	}
}

func balanceStyle(b model.Balance) *pterm.Style {
	switch b {
	case model.BalanceBalanced:
		return pterm.NewStyle(pterm.FgGreen)
	case model.BalanceSurplus:
		return pterm.NewStyle(pterm.FgYellow)
	default:
		return pterm.NewStyle(pterm.FgRed)
	}
}

func netStyle(net float64) *pterm.Style {
	if net < 0 {
		return pterm.NewStyle(pterm.FgRed)
	}
	return pterm.NewStyle(pterm.FgGreen)
}
