// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/warm-whisper/models"
	"github.com/stretchr/testify/assert"
)

// spyConversationService counts Draft calls made by the autosave job.
type spyConversationService struct {
	ConversationService

	drafts atomic.Int64
	err    error
}

func (s *spyConversationService) Draft(_ context.Context, _ models.Chat) error {
	s.drafts.Add(1)
	return s.err
}

func openChatSnapshot() (models.Chat, bool) {
	return models.Chat{
		Email:     "alice@example.com",
		SessionID: "s-1",
		Messages:  []models.Message{models.UserMessage("hi")},
	}, true
}

func noChatSnapshot() (models.Chat, bool) {
	return models.Chat{}, false
}

func TestAutosaveJob_Start_DraftsPeriodically(t *testing.T) {
	spy := &spyConversationService{}
	job := NewAutosaveJob(spy)

	job.Start(context.Background(), 10*time.Millisecond, openChatSnapshot)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.drafts.Load()
	assert.GreaterOrEqual(t, got, int64(3), "expected several autosave ticks, got %d", got)
}

func TestAutosaveJob_NoOpenChat_NothingDrafted(t *testing.T) {
	spy := &spyConversationService{}
	job := NewAutosaveJob(spy)

	job.Start(context.Background(), 10*time.Millisecond, noChatSnapshot)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), spy.drafts.Load())
}

func TestAutosaveJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyConversationService{}
	job := NewAutosaveJob(spy)

	job.Start(context.Background(), 10*time.Millisecond, openChatSnapshot)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.drafts.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.drafts.Load(), "no new drafts after Stop")
}

func TestAutosaveJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewAutosaveJob(&spyConversationService{})
	assert.NotPanics(t, func() { job.Stop() })
}

func TestAutosaveJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewAutosaveJob(&spyConversationService{})
	job.Start(context.Background(), 10*time.Millisecond, openChatSnapshot)
	job.Stop()
	assert.NotPanics(t, func() { job.Stop() })
}

func TestAutosaveJob_DefaultInterval(t *testing.T) {
	spy := &spyConversationService{}
	job := NewAutosaveJob(spy)
	ctx, cancel := context.WithCancel(context.Background())

	// interval <= 0 defaults to 30s, so 20ms must produce no ticks
	job.Start(ctx, 0, openChatSnapshot)
	time.Sleep(20 * time.Millisecond)
	cancel()
	job.Stop()

	assert.Equal(t, int64(0), spy.drafts.Load())
}

func TestAutosaveJob_DraftErrorDoesNotStopJob(t *testing.T) {
	spy := &spyConversationService{err: assert.AnError}
	job := NewAutosaveJob(spy)

	job.Start(context.Background(), 10*time.Millisecond, openChatSnapshot)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.drafts.Load()
	assert.GreaterOrEqual(t, got, int64(3), "drafting keeps going despite errors: %d", got)
}

func TestAutosaveJob_ContextCancel_StopsJob(t *testing.T) {
	spy := &spyConversationService{}
	job := NewAutosaveJob(spy)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond, openChatSnapshot)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}

func TestAutosaveJob_Restart_KeepsDrafting(t *testing.T) {
	spy := &spyConversationService{}
	job := NewAutosaveJob(spy)
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond, openChatSnapshot)
	time.Sleep(30 * time.Millisecond)
	callsBefore := spy.drafts.Load()
	assert.Greater(t, callsBefore, int64(0))

	// Start again on the same job: the previous goroutine stops first.
	job.Start(ctx, 10*time.Millisecond, openChatSnapshot)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.drafts.Load(), callsBefore, "the restarted job keeps drafting")
}
