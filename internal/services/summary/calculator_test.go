package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/pokerledger/internal/model"
)

func amount(v float64) *float64 { return &v }

func TestCalculateEmptySession(t *testing.T) {
	sum := Calculate(model.NewSession(time.Now()))

	assert.Zero(t, sum.TotalIn)
	assert.Zero(t, sum.TotalOut)
	assert.Zero(t, sum.NetInPlay)
	assert.Zero(t, sum.Discrepancy)
	assert.Equal(t, model.BalanceBalanced, sum.Balance())
}

func TestCalculateTotals(t *testing.T) {
	s := model.NewSession(time.Now())
	s.Players = []model.Player{
		{ID: "a", BuyIns: []float64{50, 25}, CashOut: amount(100)},
		{ID: "b", BuyIns: []float64{40}},
		{ID: "c", BuyIns: []float64{10}, CashOut: amount(0)},
	}

	sum := Calculate(s)

	assert.Equal(t, 125.0, sum.TotalIn)
	assert.Equal(t, 100.0, sum.TotalOut)
	assert.Equal(t, 25.0, sum.NetInPlay)
	assert.Equal(t, -25.0, sum.Discrepancy)
	assert.Equal(t, 3, sum.PlayerCount)
	assert.Equal(t, 1, sum.InPlayCount)
	assert.Equal(t, model.BalanceShortfall, sum.Balance())
}

func TestCalculateIdentitiesAreExact(t *testing.T) {
	s := model.NewSession(time.Now())
	s.Players = []model.Player{
		{ID: "a", BuyIns: []float64{0.1, 0.2, 0.3}, CashOut: amount(0.7)},
		{ID: "b", BuyIns: []float64{33.33}, CashOut: amount(1.0 / 3)},
	}

	sum := Calculate(s)

	assert.Equal(t, sum.TotalOut-sum.TotalIn, sum.Discrepancy)
	assert.Equal(t, sum.TotalIn-sum.TotalOut, sum.NetInPlay)
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name        string
		discrepancy float64
		expected    model.Balance
	}{
		{"zero", 0, model.BalanceBalanced},
		{"float noise", 0.1 + 0.2 - 0.3, model.BalanceBalanced},
		{"just under tolerance", 0.0049, model.BalanceBalanced},
		{"just under negative tolerance", -0.0049, model.BalanceBalanced},
		{"at tolerance is surplus", 0.005, model.BalanceSurplus},
		{"one cent surplus", 0.01, model.BalanceSurplus},
		{"at negative tolerance is shortfall", -0.005, model.BalanceShortfall},
		{"shortfall", -50, model.BalanceShortfall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.ClassifyDiscrepancy(tt.discrepancy))
		})
	}
}

func TestReconciledSessionIsBalanced(t *testing.T) {
	s := model.NewSession(time.Now())
	s.Players = []model.Player{
		{ID: "a", BuyIns: []float64{0.1, 0.2}, CashOut: amount(0.15)},
		{ID: "b", BuyIns: []float64{0.3}, CashOut: amount(0.45)},
	}

	assert.Equal(t, model.BalanceBalanced, Calculate(s).Balance())
}
