package http

import (
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

// assetUpdate carries a partial asset: only non-nil fields are merged.
type assetUpdate struct {
	Name          *string          `json:"name"`
	Type          *core.AssetType  `json:"type"`
	Value         *decimal.Decimal `json:"value"`
	Currency      *string          `json:"currency"`
	Description   *string          `json:"description"`
	Change24h     *decimal.Decimal `json:"change24h"`
	ChangePercent *decimal.Decimal `json:"changePercent"`
}

func (s *Server) handleAssets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.dash.Assets().List())
	case http.MethodPost:
		s.createAsset(w, r)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (s *Server) handleAssetByID(w http.ResponseWriter, r *http.Request) {
	id := pathID(r.URL.Path, "/api/assets/")
	if id == "" {
		writeError(w, http.StatusNotFound, "missing asset id")
		return
	}

	switch r.Method {
	case http.MethodPut:
		s.updateAsset(w, r, id)
	case http.MethodDelete:
		if !s.dash.Assets().Remove(r.Context(), id) {
			writeError(w, http.StatusNotFound, "asset not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, http.MethodPut, http.MethodDelete)
	}
}

func (s *Server) createAsset(w http.ResponseWriter, r *http.Request) {
	var asset core.Asset
	if err := decodeBody(r, &asset); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	asset.ID = ""

	added, err := s.dash.Assets().Add(r.Context(), asset)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	slog.InfoContext(r.Context(), "Asset created",
		"record_id", added.ID,
		"asset_type", added.Type)
	writeJSON(w, http.StatusCreated, added)
}

func (s *Server) updateAsset(w http.ResponseWriter, r *http.Request, id string) {
	var upd assetUpdate
	if err := decodeBody(r, &upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if upd.Type != nil && !upd.Type.Valid() {
		writeError(w, http.StatusUnprocessableEntity, core.ErrInvalidType.Error())
		return
	}
	if upd.Value != nil && upd.Value.IsNegative() {
		writeError(w, http.StatusUnprocessableEntity, core.ErrNegativeAmount.Error())
		return
	}

	ok := s.dash.Assets().Update(r.Context(), id, func(a *core.Asset) {
		if upd.Name != nil {
			a.Name = *upd.Name
		}
		if upd.Type != nil {
			a.Type = *upd.Type
		}
		if upd.Value != nil {
			a.Value = *upd.Value
		}
		if upd.Currency != nil {
			a.Currency = *upd.Currency
		}
		if upd.Description != nil {
			a.Description = *upd.Description
		}
		if upd.Change24h != nil {
			a.Change24h = upd.Change24h
		}
		if upd.ChangePercent != nil {
			a.ChangePercent = upd.ChangePercent
		}
	})
	if !ok {
		writeError(w, http.StatusNotFound, "asset not found")
		return
	}

	for _, a := range s.dash.Assets().List() {
		if a.ID == id {
			writeJSON(w, http.StatusOK, a)
			return
		}
	}
}
