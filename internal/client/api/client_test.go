package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL)
}

func TestRegister_Success(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/register", r.URL.Path)

		var payload struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "bob", payload.Username)
		assert.Equal(t, "Secret123!", payload.Password)

		w.WriteHeader(http.StatusCreated)
	})

	err := c.Register(context.Background(), "bob", []byte("Secret123!"))
	require.NoError(t, err)
}

func TestRegister_Duplicate(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	err := c.Register(context.Background(), "bob", []byte("pw"))
	assert.True(t, errors.Is(err, common.ErrorUsernameTaken))
}

func TestLogin_ReturnsToken(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"abc.def.ghi"}`))
	})

	token, err := c.Login(context.Background(), "bob", []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)
}

func TestLogin_Unauthorized(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.Login(context.Background(), "bob", []byte("wrong"))
	assert.True(t, errors.Is(err, common.ErrorInvalidCredentials))
}

func TestPing(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/healthz", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.Ping(context.Background()))
}

func TestClient_ContextCancelled(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Ping(ctx)
	require.Error(t, err)
}
