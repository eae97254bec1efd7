package http

import (
	"net/http"

	"fintrack/internal/services"
)

type themePayload struct {
	Theme services.Theme `json:"theme"`
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, themePayload{Theme: s.dash.Theme(r.Context())})
	case http.MethodPut:
		var payload themePayload
		if err := decodeBody(r, &payload); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := s.dash.SetTheme(r.Context(), payload.Theme); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, payload)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPut)
	}
}
