// Package api implements the HTTP client for the authgate server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/authgate/internal/common"
)

// Client talks to the authgate HTTP API.
//
// Contract:
//   - Register: create a new account; a duplicate username maps to
//     common.ErrorUsernameTaken.
//   - Login: exchange credentials for a bearer token; a rejected login
//     maps to common.ErrorInvalidCredentials regardless of the reason.
//   - Ping: check server liveness.
//
// All methods honor context cancellation.
type Client interface {
	Register(ctx context.Context, userName string, password []byte) error
	Login(ctx context.Context, userName string, password []byte) (string, error)
	Ping(ctx context.Context) error
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

// NewClient constructs a Client bound to the given server base URL.
func NewClient(baseURL string) Client {
	return &httpClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type credentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *httpClient) postCredentials(ctx context.Context, path, userName string, password []byte) (*http.Response, error) {
	body, err := json.Marshal(credentialsPayload{Username: userName, Password: string(password)})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.client.Do(req)
}

func (c *httpClient) Register(ctx context.Context, userName string, password []byte) error {
	resp, err := c.postCredentials(ctx, "/api/auth/register", userName, password)
	if err != nil {
		return fmt.Errorf("register request error: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		return nil
	case http.StatusBadRequest:
		return common.ErrorUsernameTaken
	default:
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}
}

func (c *httpClient) Login(ctx context.Context, userName string, password []byte) (string, error) {
	resp, err := c.postCredentials(ctx, "/api/auth/login", userName, password)
	if err != nil {
		return "", fmt.Errorf("login request error: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var result struct {
			Token string `json:"token"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return "", fmt.Errorf("login response decode error: %w", err)
		}
		return result.Token, nil
	case http.StatusUnauthorized:
		return "", common.ErrorInvalidCredentials
	default:
		return "", fmt.Errorf("unexpected status: %s", resp.Status)
	}
}

func (c *httpClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	return nil
}
