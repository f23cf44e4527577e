// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/warm-whisper/internal/adapter"
	"github.com/MKhiriev/warm-whisper/internal/service"
)

// humanizeServerUnavailableError turns wrapped transport and API errors
// into a line fit for the status bar. Raw dial errors and timeouts all
// collapse into one "server unavailable" message.
func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrNoChatHistory):
		return "No previous conversations yet"
	case errors.Is(err, service.ErrSessionNotFound):
		return "That conversation no longer exists on the server"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Your session has expired, please log in again"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}
