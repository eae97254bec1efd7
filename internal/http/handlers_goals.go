package http

import (
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

// goalUpdate carries a partial goal: only non-nil fields are merged.
// Status is included because completing a goal is always an explicit
// update, never a side effect of reaching the target.
type goalUpdate struct {
	Name          *string            `json:"name"`
	TargetAmount  *decimal.Decimal   `json:"targetAmount"`
	CurrentAmount *decimal.Decimal   `json:"currentAmount"`
	TargetDate    *core.Date         `json:"targetDate"`
	Category      *core.GoalCategory `json:"category"`
	Priority      *core.Priority     `json:"priority"`
	Status        *core.GoalStatus   `json:"status"`
}

func (u goalUpdate) validate() error {
	if u.TargetAmount != nil && !u.TargetAmount.IsPositive() {
		return core.ErrInvalidTarget
	}
	if u.CurrentAmount != nil && u.CurrentAmount.IsNegative() {
		return core.ErrNegativeAmount
	}
	if u.Category != nil && !u.Category.Valid() {
		return core.ErrInvalidCategory
	}
	if u.Priority != nil && !u.Priority.Valid() {
		return core.ErrInvalidPriority
	}
	if u.Status != nil && !u.Status.Valid() {
		return core.ErrInvalidStatus
	}
	return nil
}

func (s *Server) handleGoals(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.dash.Goals().List())
	case http.MethodPost:
		s.createGoal(w, r)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (s *Server) handleGoalByID(w http.ResponseWriter, r *http.Request) {
	id := pathID(r.URL.Path, "/api/goals/")
	if id == "" {
		writeError(w, http.StatusNotFound, "missing goal id")
		return
	}

	switch r.Method {
	case http.MethodPut:
		s.updateGoal(w, r, id)
	case http.MethodDelete:
		if !s.dash.Goals().Remove(r.Context(), id) {
			writeError(w, http.StatusNotFound, "goal not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, http.MethodPut, http.MethodDelete)
	}
}

func (s *Server) createGoal(w http.ResponseWriter, r *http.Request) {
	var goal core.Goal
	if err := decodeBody(r, &goal); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	goal.ID = ""

	added, err := s.dash.Goals().Add(r.Context(), goal)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	slog.InfoContext(r.Context(), "Goal created",
		"record_id", added.ID,
		"goal_category", added.Category,
		"priority", added.Priority)
	writeJSON(w, http.StatusCreated, added)
}

func (s *Server) updateGoal(w http.ResponseWriter, r *http.Request, id string) {
	var upd goalUpdate
	if err := decodeBody(r, &upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := upd.validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	ok := s.dash.Goals().Update(r.Context(), id, func(g *core.Goal) {
		if upd.Name != nil {
			g.Name = *upd.Name
		}
		if upd.TargetAmount != nil {
			g.TargetAmount = *upd.TargetAmount
		}
		if upd.CurrentAmount != nil {
			g.CurrentAmount = *upd.CurrentAmount
		}
		if upd.TargetDate != nil {
			g.TargetDate = *upd.TargetDate
		}
		if upd.Category != nil {
			g.Category = *upd.Category
		}
		if upd.Priority != nil {
			g.Priority = *upd.Priority
		}
		if upd.Status != nil {
			g.Status = *upd.Status
		}
	})
	if !ok {
		writeError(w, http.StatusNotFound, "goal not found")
		return
	}

	for _, g := range s.dash.Goals().List() {
		if g.ID == id {
			writeJSON(w, http.StatusOK, g)
			return
		}
	}
}
