package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/authgate/internal/logging"
	"github.com/dmitrijs2005/authgate/internal/server/auth"
	"github.com/dmitrijs2005/authgate/internal/server/config"
	"github.com/dmitrijs2005/authgate/internal/server/users"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	return newTestRouterWithLog(t, io.Discard)
}

func newTestRouterWithLog(t *testing.T, logOut io.Writer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		SecretKey:             "test-secret",
		TokenValidityDuration: time.Hour,
	}

	svc, err := users.NewService(users.NewInMemoryRepository(), cfg)
	require.NoError(t, err)

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(logOut, nil)))

	srv, err := NewHTTPServer(":0", logger, svc)
	require.NoError(t, err)

	return srv.Router()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegister_Created(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		gin.H{"username": "bob", "password": "Secret123!"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRegister_Duplicate(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		gin.H{"username": "Alice", "password": "pw1"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/register",
		gin.H{"username": "alice", "password": "pw2"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"username already exists"}`, w.Body.String())
}

func TestRegister_InvalidBody(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{"username": "bob"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_ReturnsToken(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		gin.H{"username": "bob", "password": "Secret123!"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login",
		gin.H{"username": "bob", "password": "Secret123!"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	claims, err := auth.ParseToken(resp.Token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, "bob", claims.Username)
}

func TestHandlers_LogRequests(t *testing.T) {
	var logBuf bytes.Buffer
	r := newTestRouterWithLog(t, &logBuf)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		gin.H{"username": "bob", "password": "Secret123!"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login",
		gin.H{"username": "bob", "password": "Secret123!"})
	require.Equal(t, http.StatusOK, w.Code)

	logs := logBuf.String()
	assert.Contains(t, logs, "Registration request")
	assert.Contains(t, logs, "Login request")
	assert.NotContains(t, logs, "Secret123!", "credentials must never be logged")
}

func TestLogin_UniformUnauthorized(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		gin.H{"username": "realuser", "password": "rightpw"})
	require.Equal(t, http.StatusCreated, w.Code)

	unknown := doJSON(t, r, http.MethodPost, "/api/auth/login",
		gin.H{"username": "nouser", "password": "anypw"})
	wrongPw := doJSON(t, r, http.MethodPost, "/api/auth/login",
		gin.H{"username": "realuser", "password": "wrongpw"})

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	assert.Equal(t, unknown.Body.String(), wrongPw.Body.String(),
		"unknown user and wrong password must be indistinguishable")
}
