package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/warm-whisper/internal/service"
	"github.com/MKhiriev/warm-whisper/models"
)

// Signup form field order. The emergency-contact block mirrors the account
// details collected by the original web client.
const (
	signupFieldFirstName = iota
	signupFieldLastName
	signupFieldEmail
	signupFieldPassword
	signupFieldRepeat
	signupFieldTelephone
	signupFieldRelative
	signupFieldRelativeNum
	signupFieldRelativeEmail
	signupFieldCount
)

var signupLabels = [signupFieldCount]string{
	"First name",
	"Last name",
	"Email",
	"Password",
	"Repeat password",
	"Telephone",
	"Relative",
	"Relative phone",
	"Relative email",
}

// SignupModel is the Bubble Tea model for the signup screen. It renders the
// account and emergency-contact fields and dispatches an async signup command
// on form submission. On success the form resets and navigates back to the
// menu, passing a [SignupSuccessNotice] payload.
type SignupModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewSignupModel creates a [SignupModel] with pre-configured inputs. The
// first-name field receives focus immediately; the password fields use masked
// echo.
func NewSignupModel(ctx context.Context, auth service.ClientAuthService) *SignupModel {
	fields := make([]textinput.Model, signupFieldCount)

	for i := range fields {
		fields[i] = textinput.New()
		fields[i].Placeholder = strings.ToLower(signupLabels[i])
		fields[i].Width = 40
	}
	fields[signupFieldEmail].CharLimit = 254
	fields[signupFieldPassword].EchoMode = textinput.EchoPassword
	fields[signupFieldPassword].EchoCharacter = '*'
	fields[signupFieldRepeat].EchoMode = textinput.EchoPassword
	fields[signupFieldRepeat].EchoCharacter = '*'
	fields[signupFieldFirstName].Focus()

	return &SignupModel{
		ctx:    ctx,
		auth:   auth,
		inputs: fields,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *SignupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [SignupResult]: clears submitting state; on error, populates errMsg;
//     on success, resets the form and navigates to the menu.
//   - esc           : cancels and navigates back to the menu.
//   - tab           : moves focus to the next input.
//   - shift+tab     : moves focus to the previous input.
//   - enter         : validates inputs and dispatches the async signup
//     command.
//
// All other key events are forwarded to the focused input widget.
func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(SignupResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeServerUnavailableError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    "menu",
				Payload: SignupSuccessNotice{Email: result.Email},
			}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			user, pass, err := m.buildUser()
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignup(user, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *SignupModel) View() string {
	labelWidth := 0
	for _, label := range signupLabels {
		if len(label) > labelWidth {
			labelWidth = len(label)
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s │ Value\n", labelWidth, "Field"))
	b.WriteString(strings.Repeat("─", labelWidth))
	b.WriteString("─┼────────────────────────────────────────────\n")
	for i, input := range m.inputs {
		b.WriteString(fmt.Sprintf("%-*s │ [", labelWidth, signupLabels[i]))
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Signing up...]\n")
	} else {
		b.WriteString("\n[Sign up]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *SignupModel) buildUser() (models.User, string, error) {
	value := func(i int) string { return strings.TrimSpace(m.inputs[i].Value()) }

	user := models.User{
		FirstName:      value(signupFieldFirstName),
		LastName:       value(signupFieldLastName),
		Email:          value(signupFieldEmail),
		Telephone:      value(signupFieldTelephone),
		RelativeName:   value(signupFieldRelative),
		RelativeNumber: value(signupFieldRelativeNum),
		RelativeEmail:  value(signupFieldRelativeEmail),
	}
	pass := m.inputs[signupFieldPassword].Value()
	repeat := m.inputs[signupFieldRepeat].Value()

	if user.FirstName == "" || user.Email == "" || pass == "" {
		return models.User{}, "", fmt.Errorf("first name, email and password are required")
	}
	if len(pass) < 6 {
		return models.User{}, "", fmt.Errorf("password must be at least 6 characters long")
	}
	if pass != repeat {
		return models.User{}, "", fmt.Errorf("passwords do not match")
	}

	return user, pass, nil
}

func (m *SignupModel) cmdSignup(user models.User, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		err := auth.Signup(ctx, user, pass)
		return SignupResult{Err: err, Email: user.Email}
	}
}

func (m *SignupModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *SignupModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *SignupModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
