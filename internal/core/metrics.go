// Package core provides the domain model and the derived-metrics engine.
//
// This file contains the aggregation functions: pure, side-effect free
// computations over snapshots of the transaction, asset and goal
// collections. Nothing here formats output; callers own presentation.
package core

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// Change summarizes the 24h movement across a set of assets.
type Change struct {
	Amount  decimal.Decimal `json:"amount"`
	Percent decimal.Decimal `json:"percent"`
}

// CategoryTotal is one per-category subtotal. A category appears at most
// once per transaction type, and only when the subtotal is positive.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Type     TransactionType `json:"type"`
}

// TotalValue sums the current mark of all assets.
func TotalValue(assets []Asset) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range assets {
		sum = sum.Add(a.Value)
	}
	return sum
}

// TotalChange sums 24h changes over assets that track them, and computes a
// value-weighted average of their percent changes. Each asset's weight is
// its share of the full asset total, not of the change-tracking subset.
// A zero asset total yields a zero percent.
func TotalChange(assets []Asset) Change {
	total := TotalValue(assets)
	change := Change{Amount: decimal.Zero, Percent: decimal.Zero}
	for _, a := range assets {
		if !a.TracksChange() {
			continue
		}
		change.Amount = change.Amount.Add(*a.Change24h)
		if !total.IsZero() {
			change.Percent = change.Percent.Add(a.ChangePercent.Mul(a.Value).Div(total))
		}
	}
	return change
}

// TotalIncome sums the amounts of all income transactions.
func TotalIncome(transactions []Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range transactions {
		if t.Type == Income {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

// TotalExpenses sums the magnitudes of all expense transactions.
func TotalExpenses(transactions []Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range transactions {
		if t.Type == Expense {
			sum = sum.Add(t.Amount.Abs())
		}
	}
	return sum
}

// NetFlow is income minus expenses.
func NetFlow(transactions []Transaction) decimal.Decimal {
	return TotalIncome(transactions).Sub(TotalExpenses(transactions))
}

// ByCategory groups transactions by category with separate income and
// expense subtotals. Categories are emitted in first-appearance order,
// income entry before expense entry when a category has both.
func ByCategory(transactions []Transaction) []CategoryTotal {
	type pair struct {
		income  decimal.Decimal
		expense decimal.Decimal
	}
	totals := make(map[string]*pair)
	var order []string
	for _, t := range transactions {
		p, ok := totals[t.Category]
		if !ok {
			p = &pair{income: decimal.Zero, expense: decimal.Zero}
			totals[t.Category] = p
			order = append(order, t.Category)
		}
		if t.Type == Income {
			p.income = p.income.Add(t.Amount)
		} else {
			p.expense = p.expense.Add(t.Amount.Abs())
		}
	}

	var out []CategoryTotal
	for _, category := range order {
		p := totals[category]
		if p.income.IsPositive() {
			out = append(out, CategoryTotal{Category: category, Total: p.income, Type: Income})
		}
		if p.expense.IsPositive() {
			out = append(out, CategoryTotal{Category: category, Total: p.expense, Type: Expense})
		}
	}
	return out
}

// ActiveGoalsCurrent sums saved-so-far amounts over active goals.
func ActiveGoalsCurrent(goals []Goal) decimal.Decimal {
	sum := decimal.Zero
	for _, g := range goals {
		if g.Status == StatusActive {
			sum = sum.Add(g.CurrentAmount)
		}
	}
	return sum
}

// ActiveGoalsTarget sums target amounts over active goals.
func ActiveGoalsTarget(goals []Goal) decimal.Decimal {
	sum := decimal.Zero
	for _, g := range goals {
		if g.Status == StatusActive {
			sum = sum.Add(g.TargetAmount)
		}
	}
	return sum
}

// GoalProgress returns current/target as a percentage capped at 100.
// Overfunded goals never display past 100. A non-positive target yields 0.
func GoalProgress(current, target decimal.Decimal) decimal.Decimal {
	if !target.IsPositive() {
		return decimal.Zero
	}
	progress := current.Div(target).Mul(oneHundred)
	if progress.GreaterThan(oneHundred) {
		return oneHundred
	}
	return progress
}

// NetWorth is the asset total plus the saved balances of active goals.
// Completed and paused goal balances are excluded by definition.
func NetWorth(assets []Asset, goals []Goal) decimal.Decimal {
	return TotalValue(assets).Add(ActiveGoalsCurrent(goals))
}
