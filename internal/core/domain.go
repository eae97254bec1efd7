package core

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

const (
	AssetStock      AssetType = "stock"
	AssetCrypto     AssetType = "crypto"
	AssetSavings    AssetType = "savings"
	AssetInvestment AssetType = "investment"
	AssetRealEstate AssetType = "real_estate"
	AssetOther      AssetType = "other"
)

const (
	GoalSavings    GoalCategory = "savings"
	GoalDebt       GoalCategory = "debt"
	GoalInvestment GoalCategory = "investment"
	GoalEmergency  GoalCategory = "emergency"
	GoalVacation   GoalCategory = "vacation"
	GoalOther      GoalCategory = "other"
)

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

const (
	StatusActive    GoalStatus = "active"
	StatusCompleted GoalStatus = "completed"
	StatusPaused    GoalStatus = "paused"
)

// DefaultCurrency is applied to assets created without one.
const DefaultCurrency = "IDR"

type (
	TransactionType string
	AssetType       string
	GoalCategory    string
	Priority        string
	GoalStatus      string

	// Transaction is a single income or expense entry. Amount is a
	// non-negative magnitude; the sign is carried by Type.
	Transaction struct {
		ID       string          `json:"id"`
		Name     string          `json:"name"`
		Amount   decimal.Decimal `json:"amount"`
		Date     Date            `json:"date"`
		Category string          `json:"category"`
		Type     TransactionType `json:"type"`
	}

	// Asset is a tracked holding with its current mark. Change24h and
	// ChangePercent are both present or both absent: they describe the
	// same comparison window.
	Asset struct {
		ID            string           `json:"id"`
		Name          string           `json:"name"`
		Type          AssetType        `json:"type"`
		Value         decimal.Decimal  `json:"value"`
		Currency      string           `json:"currency"`
		Description   string           `json:"description,omitempty"`
		LastUpdated   Date             `json:"lastUpdated"`
		Change24h     *decimal.Decimal `json:"change24h,omitempty"`
		ChangePercent *decimal.Decimal `json:"changePercent,omitempty"`
	}

	// Goal is a savings goal. CurrentAmount may exceed TargetAmount;
	// Status never changes on its own, completing a goal is a user action.
	Goal struct {
		ID            string          `json:"id"`
		Name          string          `json:"name"`
		TargetAmount  decimal.Decimal `json:"targetAmount"`
		CurrentAmount decimal.Decimal `json:"currentAmount"`
		TargetDate    Date            `json:"targetDate"`
		Category      GoalCategory    `json:"category"`
		Priority      Priority        `json:"priority"`
		Status        GoalStatus      `json:"status"`
	}
)

var (
	ErrEmptyName       = errors.New("empty name")
	ErrEmptyCategory   = errors.New("empty category")
	ErrInvalidCategory = errors.New("invalid goal category")
	ErrNegativeAmount  = errors.New("amount cannot be negative")
	ErrInvalidType     = errors.New("invalid type")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidTarget   = errors.New("target amount must be positive")
	ErrPartialChange   = errors.New("change24h and changePercent must be set together")
	ErrMissingDate     = errors.New("date is required")
)

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

func (t AssetType) Valid() bool {
	switch t {
	case AssetStock, AssetCrypto, AssetSavings, AssetInvestment, AssetRealEstate, AssetOther:
		return true
	}
	return false
}

func (c GoalCategory) Valid() bool {
	switch c {
	case GoalSavings, GoalDebt, GoalInvestment, GoalEmergency, GoalVacation, GoalOther:
		return true
	}
	return false
}

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

func (s GoalStatus) Valid() bool {
	return s == StatusActive || s == StatusCompleted || s == StatusPaused
}

func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if t.Date.IsEmpty() {
		return ErrMissingDate
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	return nil
}

func (a Asset) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	if !a.Type.Valid() {
		return ErrInvalidType
	}
	if a.Value.IsNegative() {
		return ErrNegativeAmount
	}
	if (a.Change24h == nil) != (a.ChangePercent == nil) {
		return ErrPartialChange
	}
	return nil
}

// TracksChange reports whether the asset carries 24h change figures.
func (a Asset) TracksChange() bool {
	return a.Change24h != nil && a.ChangePercent != nil
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyName
	}
	if !g.TargetAmount.IsPositive() {
		return ErrInvalidTarget
	}
	if g.CurrentAmount.IsNegative() {
		return ErrNegativeAmount
	}
	if !g.Category.Valid() {
		return ErrInvalidCategory
	}
	if !g.Priority.Valid() {
		return ErrInvalidPriority
	}
	if !g.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}
