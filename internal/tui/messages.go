package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/warm-whisper/models"
)

// NavigateTo switches the root router to another page. Payload, when set, is
// delivered to the target page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the login screen's async command.
type LoginResult struct {
	Err  error
	User models.User
}

// SignupResult finishes the signup screen's async command.
type SignupResult struct {
	Err   error
	Email string
}

// SignupSuccessNotice is shown on the menu after a successful signup.
type SignupSuccessNotice struct {
	Email string
}

type exchangeDoneMsg struct {
	chat models.Chat
}

type newSessionMsg struct {
	chat models.Chat
	err  error
}

type historyLoadedMsg struct {
	chats []models.Chat
	err   error
}

type transcriptLoadedMsg struct {
	chat models.Chat
	err  error
}

type logoutDoneMsg struct {
	err error
}
