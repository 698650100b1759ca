package model

import "time"

// PlayerID uniquely identifies a player within a session
type PlayerID string

// Player is one seat at the table and the money that has moved through it
type Player struct {
	ID        PlayerID
	Name      string
	BuyIns    []float64 // append-only, first entry recorded at creation
	CashOut   *float64  // nil while the player is still in play
	CreatedAt time.Time
}

// TotalIn returns the sum of all buy-ins
func (p *Player) TotalIn() float64 {
	var total float64
	for _, b := range p.BuyIns {
		total += b
	}
	return total
}

// CashedOut returns the cash-out amount, or zero if still in play
func (p *Player) CashedOut() float64 {
	if p.CashOut == nil {
		return 0
	}
	return *p.CashOut
}

// InPlay reports whether the player has not cashed out
func (p *Player) InPlay() bool {
	return p.CashOut == nil
}

// Net returns cash-out minus total-in. May be negative.
func (p *Player) Net() float64 {
	return p.CashedOut() - p.TotalIn()
}

// Clone returns a deep copy of the player
func (p *Player) Clone() Player {
	c := *p
	c.BuyIns = append([]float64(nil), p.BuyIns...)
	if p.CashOut != nil {
		v := *p.CashOut
		c.CashOut = &v
	}
	return c
}
