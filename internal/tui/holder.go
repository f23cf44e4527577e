package tui

import (
	"sync"

	"github.com/MKhiriev/warm-whisper/models"
)

// transcriptHolder shares the open transcript between the Bubble Tea event
// loop and the autosave job, which reads it from another goroutine.
type transcriptHolder struct {
	mu   sync.RWMutex
	chat models.Chat
	open bool
}

func (h *transcriptHolder) Set(chat models.Chat) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.chat = chat
	h.open = true
}

func (h *transcriptHolder) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.chat = models.Chat{}
	h.open = false
}

// Snapshot returns a copy of the open transcript, or false when no chat is
// on screen.
func (h *transcriptHolder) Snapshot() (models.Chat, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if !h.open {
		return models.Chat{}, false
	}

	chat := h.chat
	chat.Messages = append([]models.Message(nil), h.chat.Messages...)
	return chat, true
}
