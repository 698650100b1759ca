package model

// BalanceTolerance is the half-cent band inside which a discrepancy counts as balanced
const BalanceTolerance = 0.005

// Balance classifies a session discrepancy for display
type Balance string

const (
	BalanceBalanced  Balance = "balanced"
	BalanceSurplus   Balance = "surplus"   // more cashed out than bought in
	BalanceShortfall Balance = "shortfall" // less cashed out than bought in
)

// Summary holds the aggregate money figures of a session
type Summary struct {
	TotalIn     float64 // sum of every buy-in
	TotalOut    float64 // sum of every cash-out, absent counted as zero
	NetInPlay   float64 // TotalIn - TotalOut
	Discrepancy float64 // TotalOut - TotalIn
	PlayerCount int
	InPlayCount int
}

// Balance classifies the discrepancy
func (s Summary) Balance() Balance {
	return ClassifyDiscrepancy(s.Discrepancy)
}

// ClassifyDiscrepancy maps a discrepancy to its display class
func ClassifyDiscrepancy(d float64) Balance {
	switch {
	case d > -BalanceTolerance && d < BalanceTolerance:
		return BalanceBalanced
	case d > 0:
		return BalanceSurplus
	default:
		return BalanceShortfall
	}
}
