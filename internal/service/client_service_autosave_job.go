package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/warm-whisper/models"
)

type autosaveJob struct {
	conversations ConversationService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAutosaveJob creates an autosaveJob that drafts the open transcript to
// the local store on a ticker. The job is idle until Start is called.
func NewAutosaveJob(conversations ConversationService) AutosaveJob {
	return &autosaveJob{conversations: conversations}
}

// Start implements [AutosaveJob]. It stops any previously running job, then
// launches a background goroutine that drafts the snapshot every interval.
// If interval is zero or negative it defaults to 30 seconds. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *autosaveJob) Start(ctx context.Context, interval time.Duration, snapshot func() (models.Chat, bool)) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if chat, ok := snapshot(); ok {
					_ = j.conversations.Draft(jobCtx, chat)
				}
			}
		}
	}()
}

// Stop implements [AutosaveJob]. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *autosaveJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
