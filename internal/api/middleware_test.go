package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitdesk/internal/auth"
	"recruitdesk/internal/storage"
)

func testAPI() *API {
	return &API{tokens: auth.NewManager("test-secret", time.Hour)}
}

func TestRequireAuth_MissingToken(t *testing.T) {
	a := testAPI()
	handler := a.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/candidates", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "No token provided", body["error"])
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	a := testAPI()
	handler := a.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a malformed header")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/candidates", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Invalid authorization header", body["error"])
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	a := testAPI()
	handler := a.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an invalid token")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/candidates", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_ValidTokenAttachesPrincipal(t *testing.T) {
	a := testAPI()
	token, err := a.tokens.Issue(&storage.User{
		ID:    "user-1",
		Email: "john@recruitdesk.local",
		Role:  storage.RoleRecruiter,
	})
	require.NoError(t, err)

	called := false
	handler := a.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		called = true
		p := principal(r)
		require.NotNil(t, p)
		assert.Equal(t, "user-1", p.UserID)
		assert.Equal(t, storage.RoleRecruiter, p.Role)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/candidates", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}
