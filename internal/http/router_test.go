package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolvault/toolvault/internal/auth"
	"github.com/toolvault/toolvault/internal/config"
	"github.com/toolvault/toolvault/internal/database/bookmarks"
)

const (
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "correct horse battery staple"
)

func setupFullRouter(t *testing.T, withAuth bool) (*gin.Engine, *bookmarks.Repository) {
	t.Helper()

	db, repo := setupBookmarksTestDB(t)

	var authService *auth.Service
	if withAuth {
		var err error
		authService, err = auth.NewService(config.Auth{
			Mode:          config.AuthModeAdmin,
			AdminEmail:    testAdminEmail,
			AdminPassword: testAdminPassword,
			BcryptCost:    4,
		}, time.Hour)
		require.NoError(t, err)
	}

	router := NewRouter(RouterConfig{
		Database:      db,
		BookmarkStore: repo,
		AuthService:   authService,
		Version:       "test",
	})
	return router, repo
}

func loginForToken(t *testing.T, router *gin.Engine) string {
	t.Helper()

	body := bytes.NewBufferString(`{"email": "` + testAdminEmail + `", "password": "` + testAdminPassword + `"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/login", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRouter_UnmatchedRouteReturnsPlainNotFound(t *testing.T) {
	router, _ := setupFullRouter(t, false)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/nope/nothing/here", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "not found"}`, w.Body.String())
}

func TestRouter_MethodMismatchReturns405(t *testing.T) {
	router, _ := setupFullRouter(t, false)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/api/bookmarks", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouter_CORSHeaders(t *testing.T) {
	router, _ := setupFullRouter(t, false)

	t.Run("responses allow any origin", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/bookmarks", nil)
		req.Header.Set("Origin", "https://somewhere.example")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight succeeds with no body", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("OPTIONS", "/api/bookmarks", nil)
		req.Header.Set("Origin", "https://somewhere.example")
		req.Header.Set("Access-Control-Request-Method", "POST")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestRouter_OpenModeHasNoAuthEndpoints(t *testing.T) {
	router, _ := setupFullRouter(t, false)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/login", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_OpenModeAllowsMutations(t *testing.T) {
	router, _ := setupFullRouter(t, false)

	body := bytes.NewBufferString(`{"name": "Open", "url": "https://open.example"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/bookmarks", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRouter_AdminModeGatesMutations(t *testing.T) {
	router, repo := setupFullRouter(t, true)

	created, err := repo.CreateBookmark("Gated", "https://gated.example", "", "")
	require.NoError(t, err)

	t.Run("list stays public", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/bookmarks", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("mutations without a token are unauthorized", func(t *testing.T) {
		requests := []struct {
			method string
			path   string
			body   string
		}{
			{"POST", "/api/bookmarks", `{"name": "X", "url": "http://x"}`},
			{"PUT", "/api/bookmarks/" + itoa(created.ID), `{"name": "Y"}`},
			{"DELETE", "/api/bookmarks/" + itoa(created.ID), ""},
		}

		for _, r := range requests {
			var body *bytes.Buffer
			if r.body != "" {
				body = bytes.NewBufferString(r.body)
			} else {
				body = bytes.NewBuffer(nil)
			}

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(r.method, r.path, body)
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", r.method, r.path)
		}
	})

	t.Run("mutations with a session token pass through", func(t *testing.T) {
		token := loginForToken(t, router)

		body := bytes.NewBufferString(`{"name": "Allowed", "url": "https://allowed.example"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/bookmarks", body)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("a logged-out token stops working", func(t *testing.T) {
		token := loginForToken(t, router)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/logout", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		req, _ = http.NewRequest("DELETE", "/api/bookmarks/"+itoa(created.ID), nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
