package authclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func loginOK(w http.ResponseWriter, access, refresh string) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data": map[string]any{
			"accessToken":  access,
			"refreshToken": refresh,
			"expiresIn":    900,
			"user":         map[string]any{"id": 1, "username": "admin"},
		},
	})
}

func TestClient_LoginStoresSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		loginOK(w, "acc-1", "ref-1")
	}))
	defer srv.Close()

	c := New(srv.URL, WithClock(newFakeClock()))

	user, err := c.Login(context.Background(), "admin", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	require.True(t, c.Session().IsAuthenticated())
	access, _ := c.Session().AccessToken()
	assert.Equal(t, "acc-1", access)
}

func TestClient_LoginFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"success": false, "error": "invalid username or password",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, WithClock(newFakeClock()))

	_, err := c.Login(context.Background(), "admin", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.False(t, c.Session().IsAuthenticated())
}

func TestClient_Do_RefreshesOnceOnExpiredToken(t *testing.T) {
	var refreshCalls, dataCalls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/refresh":
			refreshCalls.Add(1)
			loginOK(w, "acc-2", "ref-2")
		case "/api/admin/bookings":
			dataCalls.Add(1)
			if strings.Contains(r.Header.Get("Authorization"), "acc-stale") {
				writeJSON(w, http.StatusUnauthorized, map[string]any{
					"success": false, "error": "access token expired", "code": "TOKEN_EXPIRED",
				})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": []any{}})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, WithClock(newFakeClock()))
	c.Session().SetTokens("acc-stale", "ref-1", 900)

	_, err := c.Do(context.Background(), http.MethodGet, "/api/admin/bookings", nil)
	require.NoError(t, err)

	assert.Equal(t, int32(1), refreshCalls.Load())
	assert.Equal(t, int32(2), dataCalls.Load())

	access, _ := c.Session().AccessToken()
	assert.Equal(t, "acc-2", access)
}

func TestClient_Do_NoRetryOnOtherAuthErrors(t *testing.T) {
	var refreshCalls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/refresh" {
			refreshCalls.Add(1)
			loginOK(w, "acc-2", "ref-2")
			return
		}
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"success": false, "error": "invalid token", "code": "INVALID_TOKEN",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, WithClock(newFakeClock()))
	c.Session().SetTokens("acc-bad", "ref-1", 900)

	_, err := c.Do(context.Background(), http.MethodGet, "/api/admin/bookings", nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "INVALID_TOKEN", apiErr.Code)
	assert.Equal(t, int32(0), refreshCalls.Load())
}

func TestClient_Do_ExpiredRetryStopsAfterSecondFailure(t *testing.T) {
	var dataCalls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/refresh" {
			loginOK(w, "acc-still-stale", "ref-2")
			return
		}
		dataCalls.Add(1)
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"success": false, "error": "access token expired", "code": "TOKEN_EXPIRED",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, WithClock(newFakeClock()))
	c.Session().SetTokens("acc-stale", "ref-1", 900)

	_, err := c.Do(context.Background(), http.MethodGet, "/api/admin/bookings", nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "TOKEN_EXPIRED", apiErr.Code)
	// One original attempt plus exactly one retry.
	assert.Equal(t, int32(2), dataCalls.Load())
}

func TestClient_RefreshTokens_RejectionPurgesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"success": false, "error": "refresh token expired", "code": "TOKEN_EXPIRED",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, WithClock(newFakeClock()))
	c.Session().SetTokens("acc-1", "ref-1", 900)

	err := c.RefreshTokens(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.False(t, c.Session().IsAuthenticated())
}

func TestClient_RefreshTokens_WithoutSession(t *testing.T) {
	c := New("http://127.0.0.1:0", WithClock(newFakeClock()))
	err := c.RefreshTokens(context.Background())
	assert.ErrorIs(t, err, ErrNoRefreshToken)
}

func TestClient_NetworkErrorKeepsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL, WithClock(newFakeClock()))
	c.Session().SetTokens("acc-1", "ref-1", 900)

	_, err := c.Do(context.Background(), http.MethodGet, "/api/admin/bookings", nil)
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	// Transport failures are not auth failures.
	assert.True(t, c.Session().IsAuthenticated())
}

func TestClient_LogoutClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/logout", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	}))
	defer srv.Close()

	c := New(srv.URL, WithClock(newFakeClock()))
	c.Session().SetTokens("acc-1", "ref-1", 900)

	require.NoError(t, c.Logout(context.Background()))
	assert.False(t, c.Session().IsAuthenticated())
}
