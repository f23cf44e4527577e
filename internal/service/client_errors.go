package service

import "errors"

// Client-side sentinel errors. The adapter's transport errors are wrapped
// into these so the TUI can branch without knowing about HTTP.
var (
	ErrSignupOnServer  = errors.New("signup rejected by server")
	ErrLoginOnServer   = errors.New("login rejected by server")
	ErrNoLocalSession  = errors.New("no local session saved")
	ErrSessionNotFound = errors.New("session not found")
	ErrNoChatHistory   = errors.New("no chat history")
)
