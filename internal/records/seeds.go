package records

import (
	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decP(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// DefaultTransactions is the built-in collection a fresh install starts
// with. Fresh copies are returned so callers can never mutate the seed.
func DefaultTransactions() []core.Transaction {
	return []core.Transaction{
		{ID: "1", Name: "Spotify Subscription", Amount: dec("9.99"), Date: core.NewDate(2025, 11, 17), Category: "Entertainment", Type: core.Expense},
		{ID: "2", Name: "Grocery Store", Amount: dec("45.20"), Date: core.NewDate(2025, 11, 16), Category: "Food", Type: core.Expense},
		{ID: "3", Name: "Part-time Job", Amount: dec("350.00"), Date: core.NewDate(2025, 11, 15), Category: "Salary", Type: core.Income},
		{ID: "4", Name: "Coffee Shop", Amount: dec("5.50"), Date: core.NewDate(2025, 11, 14), Category: "Food", Type: core.Expense},
	}
}

// DefaultAssets is the built-in asset collection for a fresh install.
func DefaultAssets() []core.Asset {
	return []core.Asset{
		{ID: "1", Name: "AAPL Stock", Type: core.AssetStock, Value: dec("15000"), Currency: core.DefaultCurrency, Description: "Apple Inc. Stock Portfolio", LastUpdated: core.NewDate(2025, 11, 16), Change24h: decP("150"), ChangePercent: decP("1.2")},
		{ID: "2", Name: "BTC", Type: core.AssetCrypto, Value: dec("25000000"), Currency: core.DefaultCurrency, Description: "Bitcoin Holdings", LastUpdated: core.NewDate(2025, 11, 16), Change24h: decP("500000"), ChangePercent: decP("2.1")},
		{ID: "3", Name: "Savings Account", Type: core.AssetSavings, Value: dec("5000000"), Currency: core.DefaultCurrency, Description: "Emergency Fund", LastUpdated: core.NewDate(2025, 11, 15)},
		{ID: "4", Name: "RDV Mutual Fund", Type: core.AssetInvestment, Value: dec("8000000"), Currency: core.DefaultCurrency, Description: "Balanced Growth Fund", LastUpdated: core.NewDate(2025, 11, 14), Change24h: decP("80000"), ChangePercent: decP("1.0")},
	}
}

// DefaultGoals is the built-in goal collection for a fresh install.
func DefaultGoals() []core.Goal {
	return []core.Goal{
		{ID: "1", Name: "Emergency Fund", TargetAmount: dec("10000000"), CurrentAmount: dec("6500000"), TargetDate: core.NewDate(2025, 12, 31), Category: core.GoalEmergency, Priority: core.PriorityHigh, Status: core.StatusActive},
		{ID: "2", Name: "Vacation to Japan", TargetAmount: dec("15000000"), CurrentAmount: dec("3500000"), TargetDate: core.NewDate(2026, 6, 1), Category: core.GoalVacation, Priority: core.PriorityMedium, Status: core.StatusActive},
		{ID: "3", Name: "First Car Down Payment", TargetAmount: dec("25000000"), CurrentAmount: dec("25000000"), TargetDate: core.NewDate(2025, 9, 15), Category: core.GoalSavings, Priority: core.PriorityHigh, Status: core.StatusCompleted},
	}
}
