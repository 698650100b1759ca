package ledgerstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/pokerledger/internal/dependencies/clock"
	"github.com/mcoot/pokerledger/internal/model"
	"github.com/mcoot/pokerledger/internal/storage"
)

// SessionKey is the fixed key the session record lives under
const SessionKey = "poker_session_v1"

// Service loads and saves the session record in a key-value store
type Service struct {
	store  storage.Store
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a new ledger store service
func New(store storage.Store, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		clock:  clk,
		logger: logger.With(slog.String("component", "ledgerstore")),
	}
}

// Load returns the persisted session. An absent key, unreadable store,
// malformed text or a record without a players list all yield a fresh
// empty session; Load never fails.
func (s *Service) Load(ctx context.Context) *model.Session {
	raw, err := s.store.Get(ctx, SessionKey)
	if err != nil {
		if !errors.Is(err, model.ErrKeyNotFound) {
			s.logger.Warn("could not read session, starting empty", slog.Any("error", err))
		}
		return model.NewSession(s.clock.Now())
	}

	var rec sessionRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		s.logger.Warn("malformed session record, starting empty", slog.Any("error", err))
		return model.NewSession(s.clock.Now())
	}
	if rec.Players == nil {
		s.logger.Warn("session record has no players, starting empty")
		return model.NewSession(s.clock.Now())
	}

	return rec.toSession()
}

// Save stamps UpdatedAt and writes the whole session under SessionKey.
// The stamp is applied even when the write fails.
func (s *Service) Save(ctx context.Context, session *model.Session) error {
	session.UpdatedAt = s.clock.Now()

	data, err := json.Marshal(recordFromSession(session))
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := s.store.Set(ctx, SessionKey, string(data)); err != nil {
		s.logger.Error("failed to save session", slog.Any("error", err))
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear deletes the session record so a later Load starts empty
func (s *Service) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, SessionKey); err != nil {
		s.logger.Error("failed to clear session", slog.Any("error", err))
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
