// Package components holds the HTML fragments of the ledger page.
// Every fragment is a templ component so handlers and the SSE broadcaster
// render them the same way.
package components

import "github.com/mcoot/pokerledger/internal/model"

//go:generate templ generate

// Element ids shared by the page, handlers and out-of-band swaps
const (
	PlayersBodyID = "players-tbody"
	SummaryID     = "summary"
	DialogID      = "dialog"
	AddFormID     = "add-player-form"
)

// NetCellID returns the element id of a player's net cell
func NetCellID(id model.PlayerID) string {
	return "net-" + string(id)
}
