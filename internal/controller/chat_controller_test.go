package controller

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"biotutor_backend/internal/config"
	"biotutor_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatRouter(providerURL string) *gin.Engine {
	ai := service.NewAIService(config.AIConfig{
		BaseURL:   providerURL,
		Model:     "test-model",
		MaxTokens: 64,
	})
	router := gin.New()
	router.POST("/api/chat", NewChatController(ai).Chat)
	return router
}

func sseChunk(content string) string {
	return fmt.Sprintf("data: {\"choices\":[{\"delta\":{\"content\":%q}}]}\n\n", content)
}

func TestChatStreamsPlainText(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, sseChunk("Hel"))
		fmt.Fprint(w, sseChunk("lo"))
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer provider.Close()

	router := newChatRouter(provider.URL)

	w := doJSON(router, http.MethodPost, "/api/chat",
		`{"messages":[{"role":"user","content":"What is a cell?"}]}`, "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, "Hello", w.Body.String())
}

func TestChatProviderFailureBeforeFirstToken(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusServiceUnavailable)
	}))
	defer provider.Close()

	router := newChatRouter(provider.URL)

	w := doJSON(router, http.MethodPost, "/api/chat",
		`{"messages":[{"role":"user","content":"hi"}]}`, "")

	// Nothing was streamed yet, so the client gets a structured error.
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestChatEmptyProviderStream(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer provider.Close()

	router := newChatRouter(provider.URL)

	w := doJSON(router, http.MethodPost, "/api/chat", `{"messages":[]}`, "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestChatRejectsMalformedBody(t *testing.T) {
	router := newChatRouter("http://unused.invalid")

	w := doJSON(router, http.MethodPost, "/api/chat", `{"messages":`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
