package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Role identifies the author of a single chat message.
type Role string

const (
	// RoleUser marks an utterance typed by the person.
	RoleUser Role = "user"

	// RoleBot marks a reply produced by the conversational agent.
	RoleBot Role = "bot"
)

// ErrAmbiguousMessage is returned when a serialized message populates both
// the "user" and the "bot" field, or neither of them.
var ErrAmbiguousMessage = errors.New("message must carry exactly one of user/bot text")

// Message is one utterance of a conversation. It is a tagged union:
// exactly one author per message, never both.
//
// The wire form matches the original transcript documents: a single-key
// object, either {"user": "..."} or {"bot": "..."}. The custom JSON
// methods below enforce that shape in both directions.
type Message struct {
	From Role
	Text string
}

// UserMessage builds a Message authored by the person.
func UserMessage(text string) Message {
	return Message{From: RoleUser, Text: text}
}

// BotMessage builds a Message authored by the agent.
func BotMessage(text string) Message {
	return Message{From: RoleBot, Text: text}
}

// wireMessage is the serialized single-key form of a Message.
type wireMessage struct {
	User *string `json:"user,omitempty"`
	Bot  *string `json:"bot,omitempty"`
}

// MarshalJSON serializes the message as {"user": text} or {"bot": text}.
func (m Message) MarshalJSON() ([]byte, error) {
	switch m.From {
	case RoleUser:
		return json.Marshal(wireMessage{User: &m.Text})
	case RoleBot:
		return json.Marshal(wireMessage{Bot: &m.Text})
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrAmbiguousMessage, m.From)
	}
}

// UnmarshalJSON parses the single-key wire form and rejects objects that
// populate both fields or neither of them.
func (m *Message) UnmarshalJSON(data []byte) error {
	var w wireMessage
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	switch {
	case w.User != nil && w.Bot == nil:
		m.From, m.Text = RoleUser, *w.User
	case w.Bot != nil && w.User == nil:
		m.From, m.Text = RoleBot, *w.Bot
	default:
		return ErrAmbiguousMessage
	}

	return nil
}

// Chat is one persisted conversation transcript. At most one Chat exists
// per (Email, SessionID) pair; every save overwrites the message sequence
// wholesale and refreshes SavedAt.
type Chat struct {
	// ChatID is the internal unique identifier of the transcript record.
	// Not exposed via JSON; used only at the persistence layer.
	ChatID int64 `json:"-"`

	// Email is a weak reference to the owning User by email.
	Email string `json:"email"`

	// SessionID is the opaque client-generated session token.
	SessionID string `json:"sessionId"`

	// Messages is the full conversation in insertion order. Order is
	// meaningful and must survive save/load verbatim.
	Messages []Message `json:"messages"`

	// SavedAt is the time of the last write for this transcript.
	SavedAt time.Time `json:"savedAt"`
}

// TableName returns the name of the database table
// associated with the Chat model.
func (c Chat) TableName() string {
	return "chats"
}
