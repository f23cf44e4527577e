package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageMarshal_User(t *testing.T) {
	b, err := json.Marshal(UserMessage("hi"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"user":"hi"}`, string(b))
}

func TestMessageMarshal_Bot(t *testing.T) {
	b, err := json.Marshal(BotMessage("hello"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"bot":"hello"}`, string(b))
}

func TestMessageMarshal_UnknownRole(t *testing.T) {
	_, err := json.Marshal(Message{From: Role("ghost"), Text: "boo"})
	require.Error(t, err)
}

func TestMessageUnmarshal_SingleKey(t *testing.T) {
	var m Message
	require.NoError(t, json.Unmarshal([]byte(`{"bot":"hello"}`), &m))
	assert.Equal(t, RoleBot, m.From)
	assert.Equal(t, "hello", m.Text)
}

func TestMessageUnmarshal_BothKeysRejected(t *testing.T) {
	var m Message
	err := json.Unmarshal([]byte(`{"user":"hi","bot":"hello"}`), &m)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAmbiguousMessage))
}

func TestMessageUnmarshal_EmptyObjectRejected(t *testing.T) {
	var m Message
	err := json.Unmarshal([]byte(`{}`), &m)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAmbiguousMessage))
}

func TestChatMessagesOrderSurvivesRoundTrip(t *testing.T) {
	chat := Chat{
		Email:     "a@x.com",
		SessionID: "s1",
		Messages: []Message{
			UserMessage("hi"),
			BotMessage("hello"),
			UserMessage("i had a rough day"),
			BotMessage("tell me about it"),
		},
	}

	b, err := json.Marshal(chat)
	require.NoError(t, err)

	var decoded Chat
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, chat.Messages, decoded.Messages)
}

func TestUserHasLoggedOutBefore(t *testing.T) {
	assert.False(t, User{LastLogout: TimeNever}.HasLoggedOutBefore())
	assert.False(t, User{}.HasLoggedOutBefore())
	assert.True(t, User{LastLogout: "10:30:00 2025-11-02"}.HasLoggedOutBefore())
}
