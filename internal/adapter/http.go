package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/activity-tracker/internal/config"
	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/internal/utils"
	"github.com/MKhiriev/activity-tracker/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login and stores the session token from the response body.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}

	login, err := decodeData[models.LoginResponse](resp)
	if err != nil {
		return models.LoginResponse{}, err
	}
	if login.SessionID == "" {
		return models.LoginResponse{}, fmt.Errorf("%w: empty session id", ErrUnexpectedResponse)
	}

	h.SetToken(login.SessionID)
	return login, nil
}

// Logout implements [ServerAdapter]. The token is forgotten even when the
// server rejects it.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	h.SetToken("")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Overview(ctx context.Context) (models.StatsOverview, error) {
	return getData[models.StatsOverview](h.authedRequest(ctx), "/api/stats/overview")
}

func (h *httpServerAdapter) ByCategory(ctx context.Context) ([]models.CategoryStat, error) {
	return getData[[]models.CategoryStat](h.authedRequest(ctx), "/api/stats/by-category")
}

func (h *httpServerAdapter) ByTag(ctx context.Context) ([]models.TagStat, error) {
	return getData[[]models.TagStat](h.authedRequest(ctx), "/api/stats/by-tag")
}

// Timeline implements [ServerAdapter]. A non-positive days leaves the window
// to the server default.
func (h *httpServerAdapter) Timeline(ctx context.Context, days int) ([]models.TimelinePoint, error) {
	req := h.authedRequest(ctx)
	if days > 0 {
		req.SetQueryParam("days", strconv.Itoa(days))
	}
	return getData[[]models.TimelinePoint](req, "/api/stats/timeline")
}

// Version implements [ServerAdapter]. GET /api/version answers plain text.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func getData[T any](req *resty.Request, path string) (T, error) {
	var zero T

	resp, err := req.Get(path)
	if err != nil {
		return zero, fmt.Errorf("GET %s: %w", path, err)
	}
	return decodeData[T](resp)
}

// decodeData maps failures to *APIError and unwraps the data member of a
// success envelope.
func decodeData[T any](resp *resty.Response) (T, error) {
	var data T

	if err := mapHTTPError(resp); err != nil {
		return data, err
	}

	envelope := struct {
		Success bool `json:"success"`
		Data    *T   `json:"data"`
	}{Data: &data}

	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return data, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	if !envelope.Success {
		return data, fmt.Errorf("%w: success is false", ErrUnexpectedResponse)
	}

	return data, nil
}
