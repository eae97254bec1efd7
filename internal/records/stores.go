package records

import (
	"time"

	"fintrack/internal/core"
)

// NewTransactionStore builds the transaction store. Transactions are
// append-and-delete only: there is no edit operation, so no update hook.
func NewTransactionStore(slots Slots) *Store[core.Transaction] {
	return NewStore(slots, Config[core.Transaction]{
		Name:     "transactions",
		Slot:     SlotTransactions,
		Seed:     DefaultTransactions(),
		ID:       func(t core.Transaction) string { return t.ID },
		Validate: core.Transaction.Validate,
		OnAdd: func(t *core.Transaction, id string, _ time.Time) {
			t.ID = id
		},
	})
}

// NewAssetStore builds the asset store. LastUpdated tracks the most recent
// create or update regardless of which fields changed, and a missing
// currency falls back to the default.
func NewAssetStore(slots Slots) *Store[core.Asset] {
	return NewStore(slots, Config[core.Asset]{
		Name:     "assets",
		Slot:     SlotAssets,
		Seed:     DefaultAssets(),
		ID:       func(a core.Asset) string { return a.ID },
		Validate: core.Asset.Validate,
		OnAdd: func(a *core.Asset, id string, now time.Time) {
			a.ID = id
			a.LastUpdated = core.DateOf(now)
			if a.Currency == "" {
				a.Currency = core.DefaultCurrency
			}
		},
		OnUpdate: func(a *core.Asset, now time.Time) {
			a.LastUpdated = core.DateOf(now)
		},
	})
}

// NewGoalStore builds the goal store. Goal status never transitions on its
// own; completing a goal is always an explicit update.
func NewGoalStore(slots Slots) *Store[core.Goal] {
	return NewStore(slots, Config[core.Goal]{
		Name:     "goals",
		Slot:     SlotGoals,
		Seed:     DefaultGoals(),
		ID:       func(g core.Goal) string { return g.ID },
		Validate: core.Goal.Validate,
		OnAdd: func(g *core.Goal, id string, _ time.Time) {
			g.ID = id
		},
	})
}
