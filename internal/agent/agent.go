// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package agent talks to the external conversational agent over its REST
// webhook. The gateway is deliberately fail-soft: whatever goes wrong on the
// wire, the user always receives a reply, so a conversation never dead-ends
// on a transport error.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/warm-whisper/internal/config"
	"github.com/MKhiriev/warm-whisper/internal/logger"
	"github.com/MKhiriev/warm-whisper/internal/utils"
	"github.com/MKhiriev/warm-whisper/models"
)

//go:generate mockgen -source=agent.go -destination=../mock/agent_client_mock.go -package=mock

// Fallback replies shown when the agent produces nothing usable. The texts
// come from the original web client and must stay verbatim.
const (
	FallbackNoReply = "Sorry, I didn't understand that. Could you please rephrase?"
	FallbackError   = "Sorry, something went wrong. Please try again later."
)

// Client delivers one user utterance to the conversational agent and returns
// the agent's replies in order.
type Client interface {
	// Send posts text on behalf of senderID and returns the bot messages the
	// agent produced. It never returns an error and never returns an empty
	// slice: when the agent has no answer the slice holds exactly one
	// fallback message.
	Send(ctx context.Context, senderID, text string) []models.Message
}

// webhookRequest is the agent's REST webhook input format.
type webhookRequest struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// webhookReply is one fragment of the agent's answer. The agent may split a
// long reply into several fragments; each becomes its own bot message.
type webhookReply struct {
	RecipientID string `json:"recipient_id"`
	Text        string `json:"text"`
}

type httpAgentClient struct {
	client     *utils.HTTPClient
	webhookURL string

	logger *logger.Logger
}

// NewHTTPClient constructs a [Client] speaking the agent's REST webhook
// protocol at cfg.WebhookURL.
func NewHTTPClient(cfg config.Agent, logger *logger.Logger) (Client, error) {
	if cfg.WebhookURL == "" {
		return nil, fmt.Errorf("empty agent webhook url")
	}

	client := utils.NewHTTPClient()
	client.SetTimeout(cfg.RequestTimeout)

	return &httpAgentClient{client: client, webhookURL: cfg.WebhookURL, logger: logger}, nil
}

// Send implements [Client].
func (a *httpAgentClient) Send(ctx context.Context, senderID, text string) []models.Message {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(webhookRequest{Sender: senderID, Message: text}).
		Post(a.webhookURL)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "*httpAgentClient.Send").Msg("agent webhook request failed")
		return []models.Message{models.BotMessage(FallbackError)}
	}
	if resp.StatusCode() != http.StatusOK {
		a.logger.Warn().Int("status", resp.StatusCode()).Str("func", "*httpAgentClient.Send").Msg("agent webhook returned non-OK status")
		return []models.Message{models.BotMessage(FallbackError)}
	}

	var replies []webhookReply
	if err = json.Unmarshal(resp.Body(), &replies); err != nil {
		a.logger.Warn().Err(err).Str("func", "*httpAgentClient.Send").Msg("agent webhook response cannot be decoded")
		return []models.Message{models.BotMessage(FallbackError)}
	}

	messages := make([]models.Message, 0, len(replies))
	for _, reply := range replies {
		if reply.Text == "" {
			continue
		}
		messages = append(messages, models.BotMessage(reply.Text))
	}

	if len(messages) == 0 {
		return []models.Message{models.BotMessage(FallbackNoReply)}
	}
	return messages
}
