package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/briitney/daybook-backend/internal/handlers"
)

func doVerify(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/verify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handlers.VerifyToken(rec, req)
	return rec
}

func TestVerifyToken_MissingToken(t *testing.T) {
	rec := doVerify(`{}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"No access token provided"}`, rec.Body.String())
}

func TestVerifyToken_EmptyToken(t *testing.T) {
	rec := doVerify(`{"accessToken":"   "}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"No access token provided"}`, rec.Body.String())
}

func TestVerifyToken_MalformedBody(t *testing.T) {
	rec := doVerify(`not json`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyToken_NonEmptyTokenAccepted(t *testing.T) {
	rec := doVerify(`{"accessToken":"anything-at-all"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"valid":true,"user":{"username":"user"}}`, rec.Body.String())
}
