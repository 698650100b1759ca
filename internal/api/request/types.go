package request

// AddPlayerRequest is the request body for adding a player
type AddPlayerRequest struct {
	Name  string   `json:"name"`
	BuyIn *float64 `json:"buy_in"`
}

// RebuyRequest is the request body for recording a rebuy
type RebuyRequest struct {
	Amount *float64 `json:"amount"`
}

// CashOutRequest is the request body for setting a cash-out.
// A null amount clears it and returns the player to play.
type CashOutRequest struct {
	Amount *float64 `json:"amount"`
}

// ResetRequest is the request body for resetting the session
type ResetRequest struct {
	Confirm bool `json:"confirm"`
}
