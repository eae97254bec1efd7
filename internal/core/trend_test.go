package core

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestMonthlyTrendBucketsAndCumulative(t *testing.T) {
	now := time.Date(2025, time.November, 17, 12, 0, 0, 0, time.UTC)
	transactions := []Transaction{
		{Name: "Salary", Amount: dec("300"), Date: NewDate(2025, 10, 5), Category: "Salary", Type: Income},
		{Name: "Rent", Amount: dec("100"), Date: NewDate(2025, 10, 6), Category: "Housing", Type: Expense},
		{Name: "Salary", Amount: dec("350"), Date: NewDate(2025, 11, 15), Category: "Salary", Type: Income},
	}

	points := MonthlyTrend(transactions, dec("1000"), now)
	if len(points) != 12 {
		t.Fatalf("got %d points, want 12", len(points))
	}
	if points[0].Month != "Dec" || points[11].Month != "Nov" {
		t.Fatalf("window = %s..%s, want Dec..Nov", points[0].Month, points[11].Month)
	}

	oct, nov := points[10], points[11]
	if oct.Month != "Oct" {
		t.Fatalf("points[10] = %s, want Oct", oct.Month)
	}
	if !oct.Income.Equal(dec("300")) || !oct.Expenses.Equal(dec("100")) || !oct.NetFlow.Equal(dec("200")) {
		t.Fatalf("October bucket = %+v", oct)
	}
	if !nov.NetFlow.Equal(dec("350")) {
		t.Fatalf("November net flow = %s, want 350", nov.NetFlow)
	}

	// Empty buckets carry the running balance forward; the seed applies
	// from the oldest bucket on.
	if !points[0].Cumulative.Equal(dec("1000")) {
		t.Fatalf("points[0].Cumulative = %s, want 1000", points[0].Cumulative)
	}
	if !oct.Cumulative.Equal(dec("1200")) {
		t.Fatalf("October cumulative = %s, want 1200", oct.Cumulative)
	}
	if !nov.Cumulative.Equal(dec("1550")) {
		t.Fatalf("November cumulative = %s, want 1550", nov.Cumulative)
	}
}

func TestMonthlyTrendCumulativeIncludesOwnBucket(t *testing.T) {
	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	transactions := []Transaction{
		{Name: "Salary", Amount: dec("50"), Date: NewDate(2025, 3, 1), Category: "Salary", Type: Income},
	}
	points := MonthlyTrend(transactions, dec("10"), now)
	last := points[11]
	if last.Month != "Mar" {
		t.Fatalf("last bucket = %s, want Mar", last.Month)
	}
	if !last.Cumulative.Equal(dec("60")) {
		t.Fatalf("cumulative = %s, want 60", last.Cumulative)
	}
}

func TestMonthlyTrendDropsPriorYears(t *testing.T) {
	now := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)
	transactions := []Transaction{
		// December 2024 falls inside the wrapped window but outside the
		// current year, so it never lands in a bucket.
		{Name: "Bonus", Amount: dec("999"), Date: NewDate(2024, 12, 20), Category: "Salary", Type: Income},
		{Name: "Salary", Amount: dec("100"), Date: NewDate(2025, 1, 5), Category: "Salary", Type: Income},
	}
	points := MonthlyTrend(transactions, decimal.Zero, now)

	for _, p := range points {
		if p.Month == "Dec" && !p.Income.IsZero() {
			t.Fatalf("December bucket picked up a prior-year transaction: %+v", p)
		}
	}
	jan := points[10]
	if jan.Month != "Jan" {
		t.Fatalf("points[10] = %s, want Jan", jan.Month)
	}
	if !jan.Income.Equal(dec("100")) {
		t.Fatalf("January income = %s, want 100", jan.Income)
	}
}

func TestMonthlyTrendEmptyInput(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	points := MonthlyTrend(nil, dec("500"), now)
	if len(points) != 12 {
		t.Fatalf("got %d points, want 12", len(points))
	}
	for i, p := range points {
		if !p.Cumulative.Equal(dec("500")) {
			t.Fatalf("points[%d].Cumulative = %s, want 500", i, p.Cumulative)
		}
	}
}
