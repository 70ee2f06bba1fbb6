// Package adapter provides a resty-backed client for the service's HTTP
// API, usable from other Go programs and from integration tests.
package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/rmachado/go-auth-api/models"
)

// Sentinel errors mapped from the service's failure statuses.
var (
	// ErrAccessDenied corresponds to 401: no credential was presented.
	ErrAccessDenied = errors.New("access denied")
	// ErrInvalidToken corresponds to 400 on protected routes: the
	// presented token failed verification.
	ErrInvalidToken = errors.New("invalid token")
	// ErrNotFound corresponds to 404.
	ErrNotFound = errors.New("not found")
	// ErrRejected corresponds to 422: the request was understood but
	// refused (validation failure, duplicate email, wrong password).
	ErrRejected = errors.New("request rejected")
	// ErrServerFault corresponds to 5xx.
	ErrServerFault = errors.New("server fault")
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAPIClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPAPIClient builds an [APIClient] against the given base URL.
func NewHTTPAPIClient(cfg HTTPClientConfig) APIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:3000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpAPIClient{client: cli}
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Email: email, Password: password}).
		Post("/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var body models.LoginResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("login decode response: %w", err)
	}
	if body.Token == "" {
		return "", errors.New("login response carried no token")
	}

	h.SetToken(body.Token)
	return body.Token, nil
}

func (h *httpAPIClient) GetUser(ctx context.Context, id string) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.Token()).
		Get("/user/" + id)
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var body models.UserResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return models.User{}, fmt.Errorf("get user decode response: %w", err)
	}

	return body.User, nil
}

// mapHTTPError converts a non-2xx response into a sentinel error wrapped
// with the server's msg field when one is present.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	var sentinel error
	switch {
	case resp.StatusCode() == http.StatusUnauthorized:
		sentinel = ErrAccessDenied
	case resp.StatusCode() == http.StatusBadRequest:
		sentinel = ErrInvalidToken
	case resp.StatusCode() == http.StatusNotFound:
		sentinel = ErrNotFound
	case resp.StatusCode() == http.StatusUnprocessableEntity:
		sentinel = ErrRejected
	default:
		sentinel = ErrServerFault
	}

	var body models.MessageResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Msg != "" {
		return fmt.Errorf("%w: %s", sentinel, body.Msg)
	}

	return fmt.Errorf("%w: status %d", sentinel, resp.StatusCode())
}
