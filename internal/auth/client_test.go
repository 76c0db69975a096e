package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeProvider(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/v1/token", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var creds struct{ Email, Password string }
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password != "correct-horse" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error_description": "Invalid login credentials",
			})
			return
		}
		_ = json.NewEncoder(w).Encode(Session{
			AccessToken:  "access-token",
			TokenType:    "bearer",
			ExpiresIn:    3600,
			RefreshToken: "refresh-token",
			User:         User{ID: "user-1", Email: creds.Email},
		})
	})

	mux.HandleFunc("GET /auth/v1/user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"msg": "invalid JWT"})
			return
		}
		_ = json.NewEncoder(w).Encode(User{
			ID:           "user-1",
			Email:        "user@example.com",
			UserMetadata: map[string]any{"role": "admin"},
		})
	})

	mux.HandleFunc("POST /auth/v1/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return httptest.NewServer(mux)
}

func TestSignInWithPassword(t *testing.T) {
	server := newFakeProvider(t)
	defer server.Close()
	client := NewClient(server.URL, "anon-key")

	session, err := client.SignInWithPassword(context.Background(), "user@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "access-token", session.AccessToken)
	assert.Equal(t, "user-1", session.User.ID)
}

func TestSignInWithPassword_BadCredentials(t *testing.T) {
	server := newFakeProvider(t)
	defer server.Close()
	client := NewClient(server.URL, "anon-key")

	_, err := client.SignInWithPassword(context.Background(), "user@example.com", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Invalid login credentials", apiErr.Message)
}

func TestGetUser(t *testing.T) {
	server := newFakeProvider(t)
	defer server.Close()
	client := NewClient(server.URL, "anon-key")

	user, err := client.GetUser(context.Background(), "access-token")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", user.Email)
	assert.Equal(t, "admin", user.UserMetadata["role"])
}

func TestSignOut(t *testing.T) {
	server := newFakeProvider(t)
	defer server.Close()
	client := NewClient(server.URL, "anon-key")

	require.NoError(t, client.SignOut(context.Background(), "access-token"))
}

func TestNotConfigured(t *testing.T) {
	client := NewClient("", "")
	assert.False(t, client.Configured())

	_, err := client.SignUp(context.Background(), "a@b.com", "pw")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = client.SignInWithPassword(context.Background(), "a@b.com", "pw")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = client.GetUser(context.Background(), "token")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
