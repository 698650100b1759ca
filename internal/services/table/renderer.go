// Package table projects a session into rows and formatted summary figures
// for whichever surface is displaying it.
package table

import (
	"strings"

	"github.com/mcoot/pokerledger/internal/model"
	"github.com/mcoot/pokerledger/internal/services/summary"
)

// Discrepancy colours
const (
	ColorBalanced  = "#22c55e"
	ColorSurplus   = "#f59e0b"
	ColorShortfall = "#ef4444"
)

// Renderer formats sessions using one currency symbol
type Renderer struct {
	symbol string
}

// NewRenderer creates a Renderer; an empty symbol falls back to DefaultCurrencySymbol
func NewRenderer(symbol string) *Renderer {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	return &Renderer{symbol: symbol}
}

// Symbol returns the currency symbol in use
func (r *Renderer) Symbol() string {
	return r.symbol
}

// Currency formats a present amount
func (r *Renderer) Currency(v float64) string {
	return FormatCurrency(r.symbol, &v)
}

// Build projects every player of s, in order, plus the summary
func (r *Renderer) Build(s *model.Session) Table {
	rows := make([]Row, 0, len(s.Players))
	for i := range s.Players {
		rows = append(rows, r.Row(i+1, &s.Players[i]))
	}
	return Table{
		Rows:    rows,
		Summary: r.Summary(summary.Calculate(s)),
	}
}

// Row projects one player at the given 1-based position
func (r *Renderer) Row(index int, p *model.Player) Row {
	buyIns := make([]string, len(p.BuyIns))
	for i, b := range p.BuyIns {
		buyIns[i] = r.Currency(b)
	}

	cashOut := ""
	if p.CashOut != nil {
		cashOut = model.FormatRawAmount(*p.CashOut)
	}

	return Row{
		Index:        index,
		ID:           p.ID,
		Name:         p.Name,
		BuyIns:       strings.Join(buyIns, BuyInSeparator),
		BuyInCount:   len(p.BuyIns),
		TotalIn:      r.Currency(p.TotalIn()),
		CashOutValue: cashOut,
		InPlay:       p.InPlay(),
		Net:          r.NetCell(p),
	}
}

// NetCell computes a player's net figure for patching in place
func (r *Renderer) NetCell(p *model.Player) NetCell {
	net := p.Net()
	return NetCell{
		PlayerID: p.ID,
		Text:     r.Currency(net),
		Raw:      net,
	}
}

// Summary formats aggregate figures and picks the discrepancy colour
func (r *Renderer) Summary(sum model.Summary) SummaryView {
	balance := sum.Balance()
	return SummaryView{
		NetInPlay:   r.Currency(sum.NetInPlay),
		TotalOut:    r.Currency(sum.TotalOut),
		Discrepancy: r.Currency(sum.Discrepancy),
		Balance:     balance,
		Color:       BalanceColor(balance),
		Figures:     sum,
	}
}

// BalanceColor maps a balance class to its display colour
func BalanceColor(b model.Balance) string {
	switch b {
	case model.BalanceBalanced:
		return ColorBalanced
	case model.BalanceSurplus:
		return ColorSurplus
	default:
		return ColorShortfall
	}
}
