// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/warm-whisper/internal/service"
	"github.com/MKhiriev/warm-whisper/models"
)

type chatMode int

const (
	modeChat chatMode = iota
	modeHistory
	modeTranscript
)

// chatModel is the main conversation screen. Besides the open chat it hosts
// two overlay modes: the saved-session list and a read-only transcript view.
type chatModel struct {
	ctx      context.Context
	services *service.ClientServices
	holder   *transcriptHolder

	user models.User
	chat models.Chat

	input   textinput.Model
	mode    chatMode
	sending bool
	status  string
	errMsg  string

	historyChats []models.Chat
	historyIdx   int
	viewedChat   models.Chat

	logout bool
}

func newChatModel(ctx context.Context, services *service.ClientServices, holder *transcriptHolder, user models.User, chat models.Chat) chatModel {
	input := textinput.New()
	input.Placeholder = "say something to Tom"
	input.CharLimit = 2000
	input.Width = 60
	input.Focus()

	holder.Set(chat)

	return chatModel{
		ctx:      ctx,
		services: services,
		holder:   holder,
		user:     user,
		chat:     chat,
		input:    input,
	}
}

func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exchangeDoneMsg:
		m.sending = false
		m.chat = msg.chat
		m.holder.Set(m.chat)
		return m, nil
	case newSessionMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.chat = msg.chat
		m.holder.Set(m.chat)
		m.status = "Started a new session"
		m.errMsg = ""
		return m, nil
	case historyLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.historyChats = msg.chats
		m.historyIdx = 0
		m.mode = modeHistory
		m.errMsg = ""
		return m, nil
	case transcriptLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.viewedChat = msg.chat
		m.mode = modeTranscript
		return m, nil
	case logoutDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.logout = true
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.mode {
	case modeHistory:
		return m.updateHistory(keyMsg)
	case modeTranscript:
		if key.Matches(keyMsg, keys.back) {
			m.mode = modeHistory
		}
		return m, nil
	default:
		return m.updateChat(keyMsg)
	}
}

func (m chatModel) updateChat(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.send):
		text := strings.TrimSpace(m.input.Value())
		if text == "" || m.sending {
			return m, nil
		}
		m.input.SetValue("")
		m.sending = true
		m.status = ""
		return m, m.cmdExchange(text)
	case key.Matches(keyMsg, keys.newSession):
		if m.sending {
			return m, nil
		}
		return m, m.cmdNewSession()
	case key.Matches(keyMsg, keys.history):
		return m, m.cmdLoadHistory()
	case key.Matches(keyMsg, keys.logout):
		m.status = "Logging out..."
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.copyReply):
		return m.copyLastReply()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	return m, cmd
}

func (m chatModel) updateHistory(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.back):
		m.mode = modeChat
	case key.Matches(keyMsg, keys.up):
		if m.historyIdx > 0 {
			m.historyIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.historyIdx < len(m.historyChats)-1 {
			m.historyIdx++
		}
	case key.Matches(keyMsg, keys.send):
		if m.historyIdx < len(m.historyChats) {
			return m, m.cmdLoadTranscript(m.historyChats[m.historyIdx].SessionID)
		}
	}
	return m, nil
}

func (m chatModel) copyLastReply() (tea.Model, tea.Cmd) {
	for i := len(m.chat.Messages) - 1; i >= 0; i-- {
		if m.chat.Messages[i].From != models.RoleBot {
			continue
		}
		if err := clipboard.WriteAll(m.chat.Messages[i].Text); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = "Copied Tom's last reply"
		return m, nil
	}

	m.status = "Nothing to copy"
	return m, nil
}

// View implements [tea.Model].
func (m chatModel) View() string {
	switch m.mode {
	case modeHistory:
		return m.viewHistory()
	case modeTranscript:
		return m.viewTranscript()
	default:
		return m.viewChat()
	}
}

func (m chatModel) viewChat() string {
	var b strings.Builder
	b.WriteString(renderTranscript(m.chat))

	if m.sending {
		b.WriteString(helpStyle.Render("Tom is typing..."))
		b.WriteString("\n")
	}

	b.WriteString("\n> ")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("CHAT WITH TOM", strings.TrimRight(b.String(), "\n"),
		"enter: send │ ctrl+n: new session │ ctrl+h: history │ ctrl+y: copy reply │ ctrl+l: log out")
}

func (m chatModel) viewHistory() string {
	var b strings.Builder
	if len(m.historyChats) == 0 {
		b.WriteString("No saved sessions yet.\n")
	} else {
		b.WriteString("Session                                │ Saved at\n")
		b.WriteString("───────────────────────────────────────┼─────────────────────\n")
		for i, chat := range m.historyChats {
			cursor := " "
			if i == m.historyIdx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %-37s │ %s\n", cursor, chat.SessionID, chat.SavedAt.Format("2006-01-02 15:04:05")))
		}
	}

	return renderPage("PREVIOUS SESSIONS", strings.TrimRight(b.String(), "\n"),
		"enter: open │ ↑/↓: move │ esc: back to chat")
}

func (m chatModel) viewTranscript() string {
	return renderPage("SESSION "+m.viewedChat.SessionID, strings.TrimRight(renderTranscript(m.viewedChat), "\n"),
		"esc: back to history")
}

func renderTranscript(chat models.Chat) string {
	var b strings.Builder
	for _, message := range chat.Messages {
		switch message.From {
		case models.RoleUser:
			b.WriteString(userLineStyle.Render("you │ " + message.Text))
		default:
			b.WriteString(botLineStyle.Render("tom │ " + message.Text))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m chatModel) cmdExchange(text string) tea.Cmd {
	ctx := m.ctx
	conversations := m.services.ConversationService
	chat := m.chat

	return func() tea.Msg {
		return exchangeDoneMsg{chat: conversations.Exchange(ctx, chat, text)}
	}
}

func (m chatModel) cmdNewSession() tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	chat := m.chat

	return func() tea.Msg {
		fresh, err := sessions.BeginNewSession(ctx, chat)
		return newSessionMsg{chat: fresh, err: err}
	}
}

func (m chatModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	conversations := m.services.ConversationService
	email := m.user.Email

	return func() tea.Msg {
		chats, err := conversations.History(ctx, email)
		return historyLoadedMsg{chats: chats, err: err}
	}
}

func (m chatModel) cmdLoadTranscript(sessionID string) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	email := m.user.Email

	return func() tea.Msg {
		chat, err := sessions.LoadSession(ctx, email, sessionID)
		return transcriptLoadedMsg{chat: chat, err: err}
	}
}

func (m chatModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	services := m.services
	chat := m.chat
	email := m.user.Email

	return func() tea.Msg {
		if _, err := services.ConversationService.Persist(ctx, chat); err != nil {
			return logoutDoneMsg{err: err}
		}
		return logoutDoneMsg{err: services.AuthService.Logout(ctx, email)}
	}
}
