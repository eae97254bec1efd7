package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

var decComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func TestIncomeExpensesNetFlow(t *testing.T) {
	transactions := []Transaction{
		{Name: "Salary", Amount: dec("100"), Date: NewDate(2025, 11, 15), Category: "Salary", Type: Income},
		{Name: "Groceries", Amount: dec("40"), Date: NewDate(2025, 11, 16), Category: "Food", Type: Expense},
	}
	if got := TotalIncome(transactions); !got.Equal(dec("100")) {
		t.Fatalf("TotalIncome = %s, want 100", got)
	}
	if got := TotalExpenses(transactions); !got.Equal(dec("40")) {
		t.Fatalf("TotalExpenses = %s, want 40", got)
	}
	if got := NetFlow(transactions); !got.Equal(dec("60")) {
		t.Fatalf("NetFlow = %s, want 60", got)
	}
}

func TestTotalsOnEmptyCollections(t *testing.T) {
	if got := TotalIncome(nil); !got.IsZero() {
		t.Fatalf("TotalIncome(nil) = %s", got)
	}
	if got := TotalValue(nil); !got.IsZero() {
		t.Fatalf("TotalValue(nil) = %s", got)
	}
	if got := NetWorth(nil, nil); !got.IsZero() {
		t.Fatalf("NetWorth(nil, nil) = %s", got)
	}
}

func TestTotalChangeWeighting(t *testing.T) {
	assets := []Asset{
		{Name: "A", Type: AssetStock, Value: dec("750"), Change24h: decP("15"), ChangePercent: decP("2")},
		{Name: "B", Type: AssetCrypto, Value: dec("250"), Change24h: decP("-5"), ChangePercent: decP("-2")},
	}
	got := TotalChange(assets)
	if !got.Amount.Equal(dec("10")) {
		t.Fatalf("Amount = %s, want 10", got.Amount)
	}
	// 2 * 750/1000 + (-2) * 250/1000 = 1.5 - 0.5
	if !got.Percent.Equal(dec("1")) {
		t.Fatalf("Percent = %s, want 1", got.Percent)
	}
}

func TestTotalChangeWeighsAgainstFullTotal(t *testing.T) {
	// The untracked asset dilutes the weighted percent but contributes no
	// change of its own.
	assets := []Asset{
		{Name: "Tracked", Type: AssetStock, Value: dec("500"), Change24h: decP("10"), ChangePercent: decP("2")},
		{Name: "Untracked", Type: AssetSavings, Value: dec("500")},
	}
	got := TotalChange(assets)
	if !got.Amount.Equal(dec("10")) {
		t.Fatalf("Amount = %s, want 10", got.Amount)
	}
	if !got.Percent.Equal(dec("1")) {
		t.Fatalf("Percent = %s, want 1", got.Percent)
	}
}

func TestTotalChangeZeroGuards(t *testing.T) {
	zeroTotal := []Asset{{Name: "Z", Type: AssetOther, Value: dec("0"), Change24h: decP("1"), ChangePercent: decP("1")}}
	got := TotalChange(zeroTotal)
	if !got.Percent.IsZero() {
		t.Fatalf("Percent = %s, want 0 for zero asset total", got.Percent)
	}

	untracked := []Asset{{Name: "U", Type: AssetSavings, Value: dec("100")}}
	got = TotalChange(untracked)
	if !got.Amount.IsZero() || !got.Percent.IsZero() {
		t.Fatalf("got %+v, want zero change when nothing tracks", got)
	}
}

func TestByCategory(t *testing.T) {
	transactions := []Transaction{
		{Name: "Market", Amount: dec("10"), Date: NewDate(2025, 11, 1), Category: "Food", Type: Expense},
		{Name: "Refund", Amount: dec("5"), Date: NewDate(2025, 11, 2), Category: "Food", Type: Income},
		{Name: "Bus", Amount: dec("3"), Date: NewDate(2025, 11, 3), Category: "Transport", Type: Expense},
	}
	want := []CategoryTotal{
		{Category: "Food", Total: dec("5"), Type: Income},
		{Category: "Food", Total: dec("10"), Type: Expense},
		{Category: "Transport", Total: dec("3"), Type: Expense},
	}
	got := ByCategory(transactions)
	if diff := cmp.Diff(want, got, decComparer); diff != "" {
		t.Fatalf("ByCategory mismatch (-want +got):\n%s", diff)
	}
}

func TestByCategorySkipsZeroSides(t *testing.T) {
	transactions := []Transaction{
		{Name: "Rent", Amount: dec("700"), Date: NewDate(2025, 11, 1), Category: "Housing", Type: Expense},
	}
	got := ByCategory(transactions)
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if got[0].Type != Expense {
		t.Fatalf("got type %s, want expense", got[0].Type)
	}
}

func TestGoalProgress(t *testing.T) {
	cases := []struct {
		current, target, want string
	}{
		{"50", "100", "50"},
		{"150", "100", "100"}, // overfunding caps at 100
		{"50", "0", "0"},      // zero target guard
		{"0", "100", "0"},
	}
	for _, tc := range cases {
		got := GoalProgress(dec(tc.current), dec(tc.target))
		if !got.Equal(dec(tc.want)) {
			t.Fatalf("GoalProgress(%s, %s) = %s, want %s", tc.current, tc.target, got, tc.want)
		}
	}
}

func TestNetWorthExcludesInactiveGoals(t *testing.T) {
	assets := []Asset{{Name: "Cash", Type: AssetSavings, Value: dec("100")}}
	goals := []Goal{
		{Name: "Fund", TargetAmount: dec("50"), CurrentAmount: dec("20"), Category: GoalSavings, Priority: PriorityLow, Status: StatusActive},
		{Name: "Car", TargetAmount: dec("30"), CurrentAmount: dec("30"), Category: GoalSavings, Priority: PriorityLow, Status: StatusCompleted},
	}
	if got := NetWorth(assets, goals); !got.Equal(dec("120")) {
		t.Fatalf("NetWorth = %s, want 120", got)
	}
}

func TestActiveGoalSums(t *testing.T) {
	goals := []Goal{
		{Status: StatusActive, CurrentAmount: dec("10"), TargetAmount: dec("100")},
		{Status: StatusPaused, CurrentAmount: dec("5"), TargetAmount: dec("50")},
		{Status: StatusActive, CurrentAmount: dec("20"), TargetAmount: dec("200")},
	}
	if got := ActiveGoalsCurrent(goals); !got.Equal(dec("30")) {
		t.Fatalf("ActiveGoalsCurrent = %s, want 30", got)
	}
	if got := ActiveGoalsTarget(goals); !got.Equal(dec("300")) {
		t.Fatalf("ActiveGoalsTarget = %s, want 300", got)
	}
}
