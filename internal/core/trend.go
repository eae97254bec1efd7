package core

import (
	"time"

	"github.com/shopspring/decimal"
)

var monthNames = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// TrendPoint is one calendar-month bucket of the spending trend.
type TrendPoint struct {
	Month      string          `json:"month"`
	Income     decimal.Decimal `json:"income"`
	Expenses   decimal.Decimal `json:"expenses"`
	NetFlow    decimal.Decimal `json:"netFlow"`
	Cumulative decimal.Decimal `json:"cumulative"`
}

// MonthlyTrend buckets transactions into the 12 calendar months ending at
// now's month, oldest first. Labels wrap across year boundaries and carry
// no year, so position order is the only disambiguator.
//
// Only transactions dated in now's calendar year are counted: a bucket that
// wraps into the previous year stays empty even if transactions exist
// there. This mirrors the dashboard's historical behavior and makes the
// series a current-year view, not a full 12-month reconstruction.
//
// The cumulative column is seeded with the given net worth and accumulates
// each bucket's net flow in chronological order. It is an illustrative
// projection from today's net worth, not a historical balance.
func MonthlyTrend(transactions []Transaction, netWorth decimal.Decimal, now time.Time) []TrendPoint {
	year := now.Year()
	current := int(now.Month()) - 1

	points := make([]TrendPoint, 0, 12)
	for i := 11; i >= 0; i-- {
		monthIndex := (current - i + 12) % 12

		var monthly []Transaction
		for _, t := range transactions {
			if t.Date.Month() == monthIndex+1 && t.Date.Year() == year {
				monthly = append(monthly, t)
			}
		}

		income := TotalIncome(monthly)
		expenses := TotalExpenses(monthly)
		points = append(points, TrendPoint{
			Month:    monthNames[monthIndex],
			Income:   income,
			Expenses: expenses,
			NetFlow:  income.Sub(expenses),
		})
	}

	running := decimal.Zero
	for i := range points {
		running = running.Add(points[i].NetFlow)
		points[i].Cumulative = netWorth.Add(running)
	}
	return points
}
