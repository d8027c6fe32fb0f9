package server

import (
	"net/http"
	"strings"
)

// handleChat handles POST /api/chat.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if s.chat == nil {
		WriteFailure(w, http.StatusBadRequest, "Chat is not configured")
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		WriteFailure(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := s.chat.Ask(r.Context(), req.Message)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Chat failed")
		WriteFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	WriteSuccess(w, reply)
}

// handleTips handles GET /api/tips.
func (s *Server) handleTips(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	if s.chat == nil {
		WriteFailure(w, http.StatusBadRequest, "Chat is not configured")
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"tips": s.chat.Tips(),
	})
}
