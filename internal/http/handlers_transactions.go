package http

import (
	"log/slog"
	"net/http"

	"fintrack/internal/core"
)

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.dash.Transactions().List())
	case http.MethodPost:
		s.createTransaction(w, r)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

// handleTransactionByID supports delete only: transactions are never
// edited in place.
func (s *Server) handleTransactionByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w, http.MethodDelete)
		return
	}
	id := pathID(r.URL.Path, "/api/transactions/")
	if id == "" {
		writeError(w, http.StatusNotFound, "missing transaction id")
		return
	}
	if !s.dash.Transactions().Remove(r.Context(), id) {
		writeError(w, http.StatusNotFound, "transaction not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	var tx core.Transaction
	if err := decodeBody(r, &tx); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	tx.ID = ""

	added, err := s.dash.Transactions().Add(r.Context(), tx)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	slog.InfoContext(r.Context(), "Transaction created",
		"record_id", added.ID,
		"category", added.Category,
		"type", added.Type)
	writeJSON(w, http.StatusCreated, added)
}
