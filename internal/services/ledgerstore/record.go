package ledgerstore

import (
	"time"

	"github.com/mcoot/pokerledger/internal/model"
)

// sessionRecord is the persisted shape of a session.
// Timestamps are epoch milliseconds; cashOut is null while a player is in play.
type sessionRecord struct {
	Players   *[]playerRecord `json:"players"`
	CreatedAt int64           `json:"createdAt"`
	UpdatedAt int64           `json:"updatedAt"`
}

type playerRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BuyIns    []float64 `json:"buyIns"`
	CashOut   *float64  `json:"cashOut"`
	CreatedAt int64     `json:"createdAt"`
}

func recordFromSession(s *model.Session) sessionRecord {
	players := make([]playerRecord, len(s.Players))
	for i, p := range s.Players {
		buyIns := p.BuyIns
		if buyIns == nil {
			buyIns = []float64{}
		}
		players[i] = playerRecord{
			ID:        string(p.ID),
			Name:      p.Name,
			BuyIns:    buyIns,
			CashOut:   p.CashOut,
			CreatedAt: p.CreatedAt.UnixMilli(),
		}
	}
	return sessionRecord{
		Players:   &players,
		CreatedAt: s.CreatedAt.UnixMilli(),
		UpdatedAt: s.UpdatedAt.UnixMilli(),
	}
}

func (r sessionRecord) toSession() *model.Session {
	s := &model.Session{
		Players:   make([]model.Player, 0, len(*r.Players)),
		CreatedAt: time.UnixMilli(r.CreatedAt).UTC(),
		UpdatedAt: time.UnixMilli(r.UpdatedAt).UTC(),
	}
	for _, p := range *r.Players {
		buyIns := p.BuyIns
		if buyIns == nil {
			buyIns = []float64{}
		}
		s.Players = append(s.Players, model.Player{
			ID:        model.PlayerID(p.ID),
			Name:      p.Name,
			BuyIns:    buyIns,
			CashOut:   p.CashOut,
			CreatedAt: time.UnixMilli(p.CreatedAt).UTC(),
		})
	}
	return s
}
