package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"biotutor_backend/internal/config"
	"biotutor_backend/internal/model"
	"biotutor_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func guardedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: testSecret, ExpireTime: time.Hour},
		Session: config.SessionConfig{
			ProtectedPrefixes: []string{"/api/lessons", "/api/chat", "/api/profile"},
		},
	}

	router := gin.New()
	router.Use(Guard(cfg))
	router.GET("/api/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/api/lessons/progress", func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		require.NotNil(t, claims)
		c.String(http.StatusOK, claims.Email)
	})
	return router
}

func mintToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	user := &model.User{Email: "alice@example.com"}
	user.ID = "user-1"
	token, err := util.GenerateJWT(user, testSecret, ttl)
	require.NoError(t, err)
	return token
}

func TestGuardIgnoresUnprotectedPaths(t *testing.T) {
	router := guardedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestGuardRejectsMissingToken(t *testing.T) {
	router := guardedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/lessons/progress", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"code":401,"message":"Unauthorized"}`, w.Body.String())
}

func TestGuardRejectsBadTokens(t *testing.T) {
	router := guardedRouter(t)

	for name, token := range map[string]string{
		"garbage":      "not-a-jwt",
		"expired":      mintToken(t, -time.Hour),
		"wrong secret": func() string {
			user := &model.User{Email: "alice@example.com"}
			user.ID = "user-1"
			token, err := util.GenerateJWT(user, "other-secret", time.Hour)
			require.NoError(t, err)
			return token
		}(),
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/lessons/progress", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
	}
}

func TestGuardAcceptsBearerHeader(t *testing.T) {
	router := guardedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/lessons/progress", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, time.Hour))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice@example.com", w.Body.String())
}

func TestGuardAcceptsSessionCookie(t *testing.T) {
	router := guardedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/lessons/progress", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: mintToken(t, time.Hour)})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGuardAcceptsQueryToken(t *testing.T) {
	router := guardedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/lessons/progress?token="+mintToken(t, time.Hour), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
