package summary

import "github.com/mcoot/pokerledger/internal/model"

// Calculate derives the aggregate figures for a session.
// Stored values are exact sums; tolerance only applies to classification.
func Calculate(s *model.Session) model.Summary {
	var sum model.Summary
	for i := range s.Players {
		p := &s.Players[i]
		sum.TotalIn += p.TotalIn()
		sum.TotalOut += p.CashedOut()
		if p.InPlay() {
			sum.InPlayCount++
		}
	}
	sum.PlayerCount = len(s.Players)
	sum.NetInPlay = sum.TotalIn - sum.TotalOut
	sum.Discrepancy = sum.TotalOut - sum.TotalIn
	return sum
}
