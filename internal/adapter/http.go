package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/warm-whisper/internal/config"
	"github.com/MKhiriev/warm-whisper/internal/logger"
	"github.com/MKhiriev/warm-whisper/internal/utils"
	"github.com/MKhiriev/warm-whisper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from cfg.BaseURL
// and configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests. Safe for concurrent use with the autosave job.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup implements [ServerAdapter]. It POSTs the account fields and the
// plaintext password to POST /signup. The password travels only inside this
// one request body. Returns an error if the request fails or the server
// rejects the registration.
func (h *httpServerAdapter) Signup(ctx context.Context, user models.User, password string) error {
	body := struct {
		models.User
		Password string `json:"password"`
	}{User: user, Password: password}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/signup")
	if err != nil {
		return fmt.Errorf("signup request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. It POSTs the credentials to POST /login.
// On success the bearer token is extracted from the Authorization response
// header and stored via SetToken. Returns the server-side user record with
// the freshly stamped LastLogin. Returns an error if the request fails, the
// server returns a non-2xx status, or the token cannot be parsed.
func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.User, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post("/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return result.User, nil
}

// FetchUser implements [ServerAdapter]. It GETs the profile from
// GET /user-details. Requires a valid bearer token.
func (h *httpServerAdapter) FetchUser(ctx context.Context, email string) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetQueryParam("email", email).
		SetResult(&user).
		Get("/user-details")
	if err != nil {
		return models.User{}, fmt.Errorf("fetch user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// RecordLogout implements [ServerAdapter]. It POSTs the account email to
// POST /update-logout-time so that the next login resumes the right session.
// Requires a valid bearer token.
func (h *httpServerAdapter) RecordLogout(ctx context.Context, email string) error {
	body := struct {
		Email string `json:"email"`
	}{Email: email}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/update-logout-time")
	if err != nil {
		return fmt.Errorf("record logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// SaveChat implements [ServerAdapter]. It POSTs the full transcript to
// POST /save-chat. The server answers 201 for a newly created record and 200
// for an overwrite of an existing one; created reflects that distinction.
// Requires a valid bearer token.
func (h *httpServerAdapter) SaveChat(ctx context.Context, chat models.Chat) (bool, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(chat).
		Post("/save-chat")
	if err != nil {
		return false, fmt.Errorf("save chat request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return resp.StatusCode() == http.StatusCreated, nil
}

// ListChats implements [ServerAdapter]. It GETs the account's saved
// transcripts from GET /get-previous-chats, most recently saved first.
// Requires a valid bearer token.
func (h *httpServerAdapter) ListChats(ctx context.Context, email string) ([]models.Chat, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("email", email).
		Get("/get-previous-chats")
	if err != nil {
		return nil, fmt.Errorf("list chats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list models.ChatListResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode chat list response: %w", err)
	}
	return list.Chats, nil
}

// FetchChat implements [ServerAdapter]. It GETs one transcript by session id
// from GET /get-chat-history. Requires a valid bearer token.
func (h *httpServerAdapter) FetchChat(ctx context.Context, email, sessionID string) (models.Chat, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(map[string]string{
			"email":     email,
			"sessionId": sessionID,
		}).
		Get("/get-chat-history")
	if err != nil {
		return models.Chat{}, fmt.Errorf("fetch chat request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Chat{}, err
	}

	var chat models.Chat
	if err = json.Unmarshal(resp.Body(), &chat); err != nil {
		return models.Chat{}, fmt.Errorf("decode chat response: %w", err)
	}
	return chat, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
