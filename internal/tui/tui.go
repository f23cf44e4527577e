package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/warm-whisper/internal/logger"
	"github.com/MKhiriev/warm-whisper/internal/service"
	"github.com/MKhiriev/warm-whisper/models"
)

// ErrUserQuit reports that the user closed the program instead of finishing
// the flow.
var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services *service.ClientServices
	holder   *transcriptHolder
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) *TUI {
	return &TUI{services: services, holder: &transcriptHolder{}, logger: logger}
}

// Snapshot returns a copy of the transcript currently on screen. It is safe
// to call from the autosave goroutine.
func (t *TUI) Snapshot() (models.Chat, bool) {
	return t.holder.Snapshot()
}

// LoginFlow runs the menu/login/signup screens until the user authenticates
// and returns the logged-in account. Returns [ErrUserQuit] when the user
// leaves without logging in.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		"menu":   NewMenuModel(),
		"login":  NewLoginModel(ctx, t.services.AuthService),
		"signup": NewSignupModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}

	return result.resultUser, nil
}

// ChatLoop runs the conversation screen on the given transcript. It blocks
// until the user logs out or quits. logout reports which of the two happened;
// final is the transcript as it stood when the screen closed.
func (t *TUI) ChatLoop(ctx context.Context, user models.User, chat models.Chat) (logout bool, final models.Chat, err error) {
	defer t.holder.Close()

	model := newChatModel(ctx, t.services, t.holder, user, chat)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, chat, runErr
	}

	result, ok := finalModel.(chatModel)
	if !ok {
		return false, chat, tea.ErrProgramKilled
	}
	return result.logout, result.chat, nil
}
