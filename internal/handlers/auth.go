package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/briitney/daybook-backend/internal/apperror"
)

type verifyRequest struct {
	AccessToken string `json:"accessToken"`
}

type verifyResponse struct {
	Valid bool              `json:"valid"`
	User  map[string]string `json:"user"`
}

// VerifyToken handles POST /api/auth/verify. This is a placeholder: any
// non-empty token is accepted, nothing is verified and no identity is bound.
// Real authentication must replace this wholesale.
func VerifyToken(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	// A malformed body is treated the same as a missing token.
	_ = json.NewDecoder(r.Body).Decode(&req)

	if strings.TrimSpace(req.AccessToken) == "" {
		writeError(w, apperror.Unauthorized("No access token provided"))
		return
	}

	writeJSON(w, http.StatusOK, verifyResponse{
		Valid: true,
		User:  map[string]string{"username": "user"},
	})
}
