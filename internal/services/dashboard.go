// Package services wires the record stores into the derived views the
// dashboard shows. All figures are recomputed from the current snapshots;
// the only cache is keyed by store revisions, so it can never serve a
// result computed before the latest mutation.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"fintrack/internal/core"
	"fintrack/internal/records"
)

const (
	ThemeDark   Theme = "dark"
	ThemeLight  Theme = "light"
	ThemeSystem Theme = "system"
)

// Theme is the persisted display preference.
type Theme string

func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight || t == ThemeSystem
}

// Summary is the headline figure set of the dashboard.
type Summary struct {
	NetWorth      decimal.Decimal `json:"netWorth"`
	AssetsTotal   decimal.Decimal `json:"assetsTotal"`
	AssetsChange  core.Change     `json:"assetsChange"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetFlow       decimal.Decimal `json:"netFlow"`
	GoalsCurrent  decimal.Decimal `json:"goalsCurrent"`
	GoalsTarget   decimal.Decimal `json:"goalsTarget"`
	GoalsProgress decimal.Decimal `json:"goalsProgress"`
	ActiveGoals   int             `json:"activeGoals"`
}

// Dashboard owns the three record stores and the theme slot.
type Dashboard struct {
	transactions *records.Store[core.Transaction]
	assets       *records.Store[core.Asset]
	goals        *records.Store[core.Goal]
	slots        records.Slots
	trendCache   *lruCache[[]core.TrendPoint]
	now          func() time.Time
	closers      []io.Closer
}

func NewDashboard(slots records.Slots, closers ...io.Closer) *Dashboard {
	return &Dashboard{
		transactions: records.NewTransactionStore(slots),
		assets:       records.NewAssetStore(slots),
		goals:        records.NewGoalStore(slots),
		slots:        slots,
		trendCache:   newLRUCache[[]core.TrendPoint](4, time.Minute),
		now:          time.Now,
		closers:      closers,
	}
}

// Init loads all three snapshots. Store initialization never fails on bad
// data, so an error here means the backend itself is broken.
func (d *Dashboard) Init(ctx context.Context) error {
	if err := d.transactions.Init(ctx); err != nil {
		return fmt.Errorf("init transactions: %w", err)
	}
	if err := d.assets.Init(ctx); err != nil {
		return fmt.Errorf("init assets: %w", err)
	}
	if err := d.goals.Init(ctx); err != nil {
		return fmt.Errorf("init goals: %w", err)
	}
	return nil
}

// Transactions exposes the transaction store.
func (d *Dashboard) Transactions() *records.Store[core.Transaction] {
	return d.transactions
}

// Assets exposes the asset store.
func (d *Dashboard) Assets() *records.Store[core.Asset] {
	return d.assets
}

// Goals exposes the goal store.
func (d *Dashboard) Goals() *records.Store[core.Goal] {
	return d.goals
}

// Summarize computes the headline figures from the current snapshots.
func (d *Dashboard) Summarize() Summary {
	transactions := d.transactions.List()
	assets := d.assets.List()
	goals := d.goals.List()

	goalsCurrent := core.ActiveGoalsCurrent(goals)
	goalsTarget := core.ActiveGoalsTarget(goals)
	active := 0
	for _, g := range goals {
		if g.Status == core.StatusActive {
			active++
		}
	}

	return Summary{
		NetWorth:      core.NetWorth(assets, goals),
		AssetsTotal:   core.TotalValue(assets),
		AssetsChange:  core.TotalChange(assets),
		TotalIncome:   core.TotalIncome(transactions),
		TotalExpenses: core.TotalExpenses(transactions),
		NetFlow:       core.NetFlow(transactions),
		GoalsCurrent:  goalsCurrent,
		GoalsTarget:   goalsTarget,
		GoalsProgress: core.GoalProgress(goalsCurrent, goalsTarget),
		ActiveGoals:   active,
	}
}

// Trend returns the 12-month series. Results are cached per revision
// triple and month; any mutation produces a new key, which is the
// write-through invalidation the dashboard relies on.
func (d *Dashboard) Trend() []core.TrendPoint {
	now := d.now()
	key := fmt.Sprintf("%d.%d.%d.%s",
		d.transactions.Revision(), d.assets.Revision(), d.goals.Revision(),
		now.Format("2006-01"))

	if cached, ok := d.trendCache.Get(key); ok {
		return cached
	}

	assets := d.assets.List()
	goals := d.goals.List()
	points := core.MonthlyTrend(d.transactions.List(), core.NetWorth(assets, goals), now)
	d.trendCache.Set(key, points)
	return points
}

// Categories returns the per-category income and expense subtotals.
func (d *Dashboard) Categories() []core.CategoryTotal {
	return core.ByCategory(d.transactions.List())
}

// Theme returns the persisted theme preference. An absent or unreadable
// slot, or a value outside the known set, yields the system default.
func (d *Dashboard) Theme(ctx context.Context) Theme {
	data, err := d.slots.Load(ctx, records.SlotTheme)
	if err != nil || data == nil {
		return ThemeSystem
	}
	var theme Theme
	if err := json.Unmarshal(data, &theme); err != nil || !theme.Valid() {
		slog.WarnContext(ctx, "Stored theme invalid, using default",
			"value", string(data))
		return ThemeSystem
	}
	return theme
}

// SetTheme validates and persists the theme preference.
func (d *Dashboard) SetTheme(ctx context.Context, theme Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("invalid theme %q", theme)
	}
	data, err := json.Marshal(theme)
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	if err := d.slots.Save(ctx, records.SlotTheme, data); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// Close releases the backing resources.
func (d *Dashboard) Close() error {
	var err error
	for _, c := range d.closers {
		err = multierr.Append(err, c.Close())
	}
	return err
}
