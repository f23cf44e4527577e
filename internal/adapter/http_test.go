// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/warm-whisper/internal/config"
	"github.com/MKhiriev/warm-whisper/internal/logger"
	"github.com/MKhiriev/warm-whisper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	log := logger.NewClientLogger("test")
	cfg := config.ClientAdapter{BaseURL: serverURL}

	a, err := NewHTTPServerAdapter(cfg, log)
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func TestNewHTTPServerAdapter_RejectsEmptyAddress(t *testing.T) {
	log := logger.NewClientLogger("test")
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, log)
	require.Error(t, err)
}

func TestNormalizeBaseURL_AddsScheme(t *testing.T) {
	got, err := normalizeBaseURL("localhost:5000")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", got)
}

// ── Signup ──────────────────────────────────────────────────────────────────

func TestSignup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/signup", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "alice@example.com", payload["email"])
		assert.Equal(t, "secret123", payload["password"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "User created successfully."})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Signup(context.Background(), models.User{Email: "alice@example.com", FirstName: "Alice"}, "secret123")

	require.NoError(t, err)
	assert.Empty(t, a.Token(), "signup must not log the user in")
}

func TestSignup_DuplicateEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "User already registered"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Signup(context.Background(), models.User{Email: "alice@example.com"}, "secret123")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "User already registered")
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	want := models.User{Email: "alice@example.com", FirstName: "Alice", LastLogout: models.TimeNever}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)

		w.Header().Set("Authorization", "Bearer token-from-server")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.LoginResponse{Message: "Login successful", User: want})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), "alice@example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, want.Email, got.Email)
	assert.Equal(t, models.TimeNever, got.LastLogout)
	assert.Equal(t, "token-from-server", a.Token())
}

func TestLogin_UnknownEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "User not found"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), "ghost@example.com", "secret123")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Invalid password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), "alice@example.com", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestLogin_MissingAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.LoginResponse{Message: "Login successful"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), "alice@example.com", "secret123")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse bearer token")
}

// ── FetchUser ───────────────────────────────────────────────────────────────

func TestFetchUser_SendsTokenAndEmail(t *testing.T) {
	want := models.User{Email: "alice@example.com", FirstName: "Alice", RelativeName: "Bob"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user-details", r.URL.Path)
		assert.Equal(t, "alice@example.com", r.URL.Query().Get("email"))
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	got, err := a.FetchUser(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, want.FirstName, got.FirstName)
	assert.Equal(t, want.RelativeName, got.RelativeName)
}

// ── RecordLogout ────────────────────────────────────────────────────────────

func TestRecordLogout_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/update-logout-time", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "alice@example.com", payload["email"])

		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "Logout time updated successfully."})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	require.NoError(t, a.RecordLogout(context.Background(), "alice@example.com"))
}

// ── SaveChat ────────────────────────────────────────────────────────────────

func TestSaveChat_Created(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/save-chat", r.URL.Path)

		var chat models.Chat
		require.NoError(t, json.NewDecoder(r.Body).Decode(&chat))
		assert.Equal(t, "s-1", chat.SessionID)
		require.Len(t, chat.Messages, 2)
		assert.Equal(t, models.RoleUser, chat.Messages[0].From)
		assert.Equal(t, models.RoleBot, chat.Messages[1].From)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "Chat history saved successfully."})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	chat := models.Chat{
		Email:     "alice@example.com",
		SessionID: "s-1",
		Messages:  []models.Message{models.UserMessage("hi"), models.BotMessage("hello")},
	}

	created, err := a.SaveChat(context.Background(), chat)
	require.NoError(t, err)
	assert.True(t, created)
}

func TestSaveChat_Updated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "Chat history updated successfully."})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	created, err := a.SaveChat(context.Background(), models.Chat{
		Email:     "alice@example.com",
		SessionID: "s-1",
		Messages:  []models.Message{models.UserMessage("hi")},
	})
	require.NoError(t, err)
	assert.False(t, created)
}

// ── ListChats / FetchChat ───────────────────────────────────────────────────

func TestListChats_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get-previous-chats", r.URL.Path)
		assert.Equal(t, "alice@example.com", r.URL.Query().Get("email"))

		list := models.ChatListResponse{Chats: []models.Chat{
			{SessionID: "s-3"},
			{SessionID: "s-2"},
		}}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(list)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	chats, err := a.ListChats(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Len(t, chats, 2)
	assert.Equal(t, "s-3", chats[0].SessionID)
}

func TestListChats_NoHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "No chat history found"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	_, err := a.ListChats(context.Background(), "alice@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchChat_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get-chat-history", r.URL.Path)
		assert.Equal(t, "s-1", r.URL.Query().Get("sessionId"))

		chat := models.Chat{
			Email:     "alice@example.com",
			SessionID: "s-1",
			Messages:  []models.Message{models.BotMessage("welcome back")},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chat)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	chat, err := a.FetchChat(context.Background(), "alice@example.com", "s-1")
	require.NoError(t, err)
	require.Len(t, chat.Messages, 1)
	assert.Equal(t, models.RoleBot, chat.Messages[0].From)
}

func TestFetchChat_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Chat history not found"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	_, err := a.FetchChat(context.Background(), "alice@example.com", "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
