package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesAccount(t *testing.T) {
	router := newAPIRouter(t)

	w := doJSON(router, http.MethodPost, "/api/register",
		`{"name":"Alice","email":"alice@example.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		User map[string]interface{} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "alice@example.com", body.User["email"])
	assert.NotEmpty(t, body.User["id"])

	// The stored hash never leaves the server.
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "secret1")
}

func TestRegisterValidation(t *testing.T) {
	router := newAPIRouter(t)

	w := doJSON(router, http.MethodPost, "/api/register",
		`{"email":"not-an-email","password":"secret1"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/api/register",
		`{"email":"alice@example.com"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/api/register",
		`{"email":"alice@example.com","password":"12345"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "at least 6 characters")
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	router := newAPIRouter(t)

	w := doJSON(router, http.MethodPost, "/api/register",
		`{"name":"Alice","email":"alice@example.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/api/register",
		`{"name":"Also Alice","email":"ALICE@example.com","password":"another1"}`, "")
	require.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"code":409,"message":"User with this email already exists"}`, w.Body.String())
}

func TestLoginSetsSessionCookie(t *testing.T) {
	router := newAPIRouter(t)

	w := doJSON(router, http.MethodPost, "/api/register",
		`{"name":"Alice","email":"alice@example.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/api/login",
		`{"email":"alice@example.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Token)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	var found bool
	for _, c := range cookies {
		if c.Name == "session_token" {
			found = true
			assert.Equal(t, body.Token, c.Value)
			assert.True(t, c.HttpOnly)
		}
	}
	assert.True(t, found, "login must set the session cookie")
}

func TestLoginFailuresShareOneResponse(t *testing.T) {
	router := newAPIRouter(t)

	w := doJSON(router, http.MethodPost, "/api/register",
		`{"name":"Alice","email":"alice@example.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	wrongPassword := doJSON(router, http.MethodPost, "/api/login",
		`{"email":"alice@example.com","password":"wrong-pass"}`, "")
	unknownEmail := doJSON(router, http.MethodPost, "/api/login",
		`{"email":"nobody@example.com","password":"secret1"}`, "")

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	// Identical bodies; the response must not reveal whether the email exists.
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.JSONEq(t, `{"code":401,"message":"Invalid credentials"}`, wrongPassword.Body.String())
}

func TestGetProfile(t *testing.T) {
	router := newAPIRouter(t)

	w := doJSON(router, http.MethodPost, "/api/register",
		`{"name":"Alice","email":"alice@example.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/api/login",
		`{"email":"alice@example.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	w = doJSON(router, http.MethodGet, "/api/profile", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodGet, "/api/profile", "", login.Token)
	require.Equal(t, http.StatusOK, w.Code)
	var profile struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "Alice", profile.Name)
	assert.Equal(t, "alice@example.com", profile.Email)
}
