package model

import (
	"log/slog"
	"time"
)

// EventType identifies a change to the ledger
type EventType string

const (
	EventPlayerAdded   EventType = "player_added"
	EventRebuyAdded    EventType = "rebuy_added"
	EventCashOutSet    EventType = "cashout_set"
	EventPlayerRemoved EventType = "player_removed"
	EventSessionReset  EventType = "session_reset"
)

// Event describes one applied mutation
type Event struct {
	Type      EventType
	Timestamp time.Time
	PlayerID  PlayerID // empty for session-wide events
	Amount    *float64 // buy-in, rebuy or cash-out amount where relevant
}

// LogValue renders the event as a log group
func (e Event) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", string(e.Type)),
		slog.Time("at", e.Timestamp),
	}
	if e.PlayerID != "" {
		attrs = append(attrs, slog.String("player_id", string(e.PlayerID)))
	}
	if e.Amount != nil {
		attrs = append(attrs, slog.Float64("amount", *e.Amount))
	}
	return slog.GroupValue(attrs...)
}

// Refresh is how a surface must be brought up to date after an event
type Refresh string

const (
	RefreshFull  Refresh = "full"  // rebuild every row
	RefreshPatch Refresh = "patch" // one net cell plus summary
)
