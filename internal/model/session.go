package model

import "time"

// Session is the ledger for a single evening of play.
// Player order is insertion order and is also display order.
type Session struct {
	Players   []Player
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSession returns an empty session stamped at now
func NewSession(now time.Time) *Session {
	return &Session{
		Players:   []Player{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GetPlayer returns the player with the given id, or nil if absent
func (s *Session) GetPlayer(id PlayerID) *Player {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

// HasPlayer reports whether a player with the given id exists
func (s *Session) HasPlayer(id PlayerID) bool {
	return s.GetPlayer(id) != nil
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	c := &Session{
		Players:   make([]Player, len(s.Players)),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	for i := range s.Players {
		c.Players[i] = s.Players[i].Clone()
	}
	return c
}
