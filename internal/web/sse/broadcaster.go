package sse

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/mcoot/pokerledger/internal/services/table"
	"github.com/mcoot/pokerledger/internal/web/templates/components"
)

// Event names the page listens for
const (
	EventTableUpdate   = "table-update"
	EventNetUpdate     = "net-update"
	EventSummaryUpdate = "summary-update"
)

// Broadcaster is the browser-facing table.Surface: each refresh becomes
// an SSE event carrying out-of-band swap fragments
type Broadcaster struct {
	hub    *Hub
	logger *slog.Logger
}

var _ table.Surface = (*Broadcaster)(nil)

// NewBroadcaster creates a Broadcaster publishing to hub
func NewBroadcaster(hub *Hub, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hub:    hub,
		logger: logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// ShowTable replaces every row and the summary on all pages
func (b *Broadcaster) ShowTable(ctx context.Context, t table.Table) {
	html, err := RenderTableUpdate(ctx, t)
	if err != nil {
		b.logger.Error("sse failed to render table", slog.Any("error", err))
		return
	}
	b.hub.BroadcastEvent(EventTableUpdate, html)
}

// PatchNet swaps a single net cell, leaving the row and its input alone
func (b *Broadcaster) PatchNet(ctx context.Context, cell table.NetCell) {
	var buf bytes.Buffer
	if err := components.NetCell(cell, true).Render(ctx, &buf); err != nil {
		b.logger.Error("sse failed to render net cell",
			slog.String("player_id", string(cell.PlayerID)),
			slog.Any("error", err))
		return
	}
	b.hub.BroadcastEvent(EventNetUpdate, WrapTableFragment(buf.String()))
}

// ShowSummary swaps the summary panel
func (b *Broadcaster) ShowSummary(ctx context.Context, s table.SummaryView) {
	var buf bytes.Buffer
	if err := components.Summary(s, true).Render(ctx, &buf); err != nil {
		b.logger.Error("sse failed to render summary", slog.Any("error", err))
		return
	}
	b.hub.BroadcastEvent(EventSummaryUpdate, buf.String())
}
