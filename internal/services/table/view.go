package table

import "github.com/mcoot/pokerledger/internal/model"

// Table is the display projection of a whole session
type Table struct {
	Rows    []Row
	Summary SummaryView
}

// Row is one player's line in the table, in session order
type Row struct {
	Index        int // 1-based
	ID           model.PlayerID
	Name         string // as entered
	BuyIns       string // formatted buy-ins joined by BuyInSeparator
	BuyInCount   int
	TotalIn      string
	CashOutValue string // raw input value, empty while in play
	InPlay       bool
	Net          NetCell
}

// NetCell is the single cell the live cash-out path patches
type NetCell struct {
	PlayerID model.PlayerID
	Text     string  // formatted
	Raw      float64 // unformatted, carried as data-net
}

// RawText renders Raw the way it is tagged on the cell
func (c NetCell) RawText() string {
	return model.FormatRawAmount(c.Raw)
}

// SummaryView is the formatted summary panel
type SummaryView struct {
	NetInPlay   string
	TotalOut    string
	Discrepancy string
	Balance     model.Balance
	Color       string
	Figures     model.Summary
}
