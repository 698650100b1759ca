// Package session owns the live ledger session and its five mutations.
// Every mutation is applied to memory first, then written through to the
// ledger store before the call returns.
package session

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/mcoot/pokerledger/internal/dependencies/clock"
	"github.com/mcoot/pokerledger/internal/dependencies/random"
	"github.com/mcoot/pokerledger/internal/model"
	"github.com/mcoot/pokerledger/internal/services/ledgerstore"
)

// idRandomLength is the number of random characters leading a player id
const idRandomLength = 8

// Model is the single owned session plus the operations that change it
type Model struct {
	store  *ledgerstore.Service
	clock  clock.Clock
	random random.Random
	logger *slog.Logger

	mu      sync.Mutex
	session *model.Session
}

// New loads the persisted session (or starts an empty one) and returns its owner
func New(ctx context.Context, store *ledgerstore.Service, clk clock.Clock, rnd random.Random, logger *slog.Logger) *Model {
	return &Model{
		store:   store,
		clock:   clk,
		random:  rnd,
		logger:  logger.With(slog.String("component", "session")),
		session: store.Load(ctx),
	}
}

// Snapshot returns a deep copy of the current session
func (m *Model) Snapshot() *model.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.Clone()
}

// Player returns a copy of one player, or ErrPlayerNotFound
func (m *Model) Player(id model.PlayerID) (model.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.session.GetPlayer(id)
	if p == nil {
		return model.Player{}, model.ErrPlayerNotFound
	}
	return p.Clone(), nil
}

// AddPlayer appends a new player with a single buy-in.
// The caller validates name and amount; this only trims the name.
func (m *Model) AddPlayer(ctx context.Context, name string, buyIn float64) (*model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	player := model.Player{
		ID:        m.newPlayerID(),
		Name:      strings.TrimSpace(name),
		BuyIns:    []float64{buyIn},
		CashOut:   nil,
		CreatedAt: now,
	}
	m.session.Players = append(m.session.Players, player)

	m.logger.Info("player added",
		slog.String("player_id", string(player.ID)),
		slog.Float64("buy_in", buyIn))

	return m.commit(ctx, model.Event{Type: model.EventPlayerAdded, PlayerID: player.ID, Amount: &buyIn})
}

// AddRebuy appends amount to a player's buy-ins. Unknown ids are ignored.
func (m *Model) AddRebuy(ctx context.Context, id model.PlayerID, amount float64) (*model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := m.session.GetPlayer(id)
	if p == nil {
		m.logger.Debug("rebuy for unknown player ignored", slog.String("player_id", string(id)))
		return nil, nil
	}
	p.BuyIns = append(p.BuyIns, amount)

	m.logger.Info("rebuy added",
		slog.String("player_id", string(id)),
		slog.Float64("amount", amount),
		slog.Int("buy_ins", len(p.BuyIns)))

	return m.commit(ctx, model.Event{Type: model.EventRebuyAdded, PlayerID: id, Amount: &amount})
}

// SetCashOut sets a player's cash-out, or clears it when amount is nil.
// Sign is not checked here. Unknown ids are ignored.
func (m *Model) SetCashOut(ctx context.Context, id model.PlayerID, amount *float64) (*model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := m.session.GetPlayer(id)
	if p == nil {
		m.logger.Debug("cash-out for unknown player ignored", slog.String("player_id", string(id)))
		return nil, nil
	}
	if amount == nil {
		p.CashOut = nil
	} else {
		v := *amount
		p.CashOut = &v
	}

	m.logger.Info("cash-out set",
		slog.String("player_id", string(id)),
		slog.Bool("in_play", p.CashOut == nil))

	return m.commit(ctx, model.Event{Type: model.EventCashOutSet, PlayerID: id, Amount: p.CashOut})
}

// RemovePlayer deletes a player's record. Unknown ids are ignored.
func (m *Model) RemovePlayer(ctx context.Context, id model.PlayerID) (*model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := make([]model.Player, 0, len(m.session.Players))
	for _, p := range m.session.Players {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(m.session.Players) {
		m.logger.Debug("remove for unknown player ignored", slog.String("player_id", string(id)))
		return nil, nil
	}
	m.session.Players = kept

	m.logger.Info("player removed", slog.String("player_id", string(id)))

	return m.commit(ctx, model.Event{Type: model.EventPlayerRemoved, PlayerID: id})
}

// Reset replaces the session with a fresh empty one.
// Confirmation is the caller's job; Reset itself always runs.
func (m *Model) Reset(ctx context.Context) (*model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	discarded := len(m.session.Players)
	m.session = model.NewSession(m.clock.Now())
	if err := m.store.Clear(ctx); err != nil {
		m.logger.Warn("previous session record not cleared", slog.Any("error", err))
	}

	m.logger.Info("session reset", slog.Int("players_discarded", discarded))

	return m.commit(ctx, model.Event{Type: model.EventSessionReset})
}

// commit persists the session. Must be called with mu held.
// The in-memory change stands even when the write fails.
func (m *Model) commit(ctx context.Context, event model.Event) (*model.Event, error) {
	event.Timestamp = m.clock.Now()
	if err := m.store.Save(ctx, m.session); err != nil {
		m.logger.Warn("event applied in memory only", slog.Any("event", event), slog.Any("error", err))
		return &event, err
	}
	m.logger.Debug("event committed", slog.Any("event", event))
	return &event, nil
}

// newPlayerID returns random base36 characters followed by the creation
// time in base36 milliseconds, retrying on the unlikely collision
func (m *Model) newPlayerID() model.PlayerID {
	suffix := strconv.FormatInt(m.clock.Now().UnixMilli(), 36)
	for {
		id := model.PlayerID(m.random.String(idRandomLength, random.Base36Alphabet) + suffix)
		if !m.session.HasPlayer(id) {
			return id
		}
	}
}
