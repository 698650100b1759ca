package response

import (
	"time"

	"github.com/mcoot/pokerledger/internal/model"
	"github.com/mcoot/pokerledger/internal/services/summary"
	"github.com/mcoot/pokerledger/internal/services/table"
)

// Player represents a player in API responses
type Player struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	BuyIns    []float64     `json:"buy_ins"`
	TotalIn   float64       `json:"total_in"`
	CashOut   *float64      `json:"cash_out"`
	Net       float64       `json:"net"`
	InPlay    bool          `json:"in_play"`
	CreatedAt time.Time     `json:"created_at"`
	Display   PlayerDisplay `json:"display"`
}

// PlayerDisplay holds a player's currency-formatted figures
type PlayerDisplay struct {
	BuyIns  string `json:"buy_ins"`
	TotalIn string `json:"total_in"`
	CashOut string `json:"cash_out"` // empty while in play
	Net     string `json:"net"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player, r *table.Renderer) Player {
	c := p.Clone()
	row := r.Row(0, &c)

	cashOut := ""
	if c.CashOut != nil {
		cashOut = r.Currency(*c.CashOut)
	}

	return Player{
		ID:        string(c.ID),
		Name:      c.Name,
		BuyIns:    c.BuyIns,
		TotalIn:   c.TotalIn(),
		CashOut:   c.CashOut,
		Net:       c.Net(),
		InPlay:    c.InPlay(),
		CreatedAt: c.CreatedAt,
		Display: PlayerDisplay{
			BuyIns:  row.BuyIns,
			TotalIn: row.TotalIn,
			CashOut: cashOut,
			Net:     row.Net.Text,
		},
	}
}

// Summary represents the aggregate figures of the session
type Summary struct {
	TotalIn     float64 `json:"total_in"`
	TotalOut    float64 `json:"total_out"`
	NetInPlay   float64 `json:"net_in_play"`
	Discrepancy float64 `json:"discrepancy"`
	Balance     string  `json:"balance"`
	PlayerCount int     `json:"player_count"`
	InPlayCount int     `json:"in_play_count"`
	Display     Display `json:"display"`
}

// Display holds the currency-formatted figures as a surface shows them
type Display struct {
	NetInPlay   string `json:"net_in_play"`
	TotalOut    string `json:"total_out"`
	Discrepancy string `json:"discrepancy"`
	Color       string `json:"color"`
}

// SummaryFromView converts a rendered summary to a response Summary
func SummaryFromView(v table.SummaryView) Summary {
	return Summary{
		TotalIn:     v.Figures.TotalIn,
		TotalOut:    v.Figures.TotalOut,
		NetInPlay:   v.Figures.NetInPlay,
		Discrepancy: v.Figures.Discrepancy,
		Balance:     string(v.Balance),
		PlayerCount: v.Figures.PlayerCount,
		InPlayCount: v.Figures.InPlayCount,
		Display: Display{
			NetInPlay:   v.NetInPlay,
			TotalOut:    v.TotalOut,
			Discrepancy: v.Discrepancy,
			Color:       v.Color,
		},
	}
}

// Session represents the whole ledger
type Session struct {
	Players   []Player  `json:"players"`
	Summary   Summary   `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SessionFromModel converts a session, formatting figures with r
func SessionFromModel(s *model.Session, r *table.Renderer) Session {
	players := make([]Player, 0, len(s.Players))
	for i := range s.Players {
		players = append(players, PlayerFromModel(&s.Players[i], r))
	}
	return Session{
		Players:   players,
		Summary:   SummaryFromView(r.Summary(summary.Calculate(s))),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// Health is the response for the health check
type Health struct {
	Status  string `json:"status"`
	Players int    `json:"players"`
}
