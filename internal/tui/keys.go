package tui

import "github.com/charmbracelet/bubbles/key"

// Chat-screen hotkeys live on ctrl combinations because plain letters belong
// to the message being typed.
type keyMap struct {
	send       key.Binding
	back       key.Binding
	newSession key.Binding
	history    key.Binding
	logout     key.Binding
	copyReply  key.Binding
	up         key.Binding
	down       key.Binding
}

var keys = keyMap{
	send:       key.NewBinding(key.WithKeys("enter")),
	back:       key.NewBinding(key.WithKeys("esc")),
	newSession: key.NewBinding(key.WithKeys("ctrl+n")),
	history:    key.NewBinding(key.WithKeys("ctrl+h")),
	logout:     key.NewBinding(key.WithKeys("ctrl+l")),
	copyReply:  key.NewBinding(key.WithKeys("ctrl+y")),
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
}
