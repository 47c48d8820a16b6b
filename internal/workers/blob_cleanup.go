package workers

import (
	"context"
	"sync"
	"time"

	"github.com/vidora/vidora/internal/adapter"
	"github.com/vidora/vidora/internal/config"
	"github.com/vidora/vidora/internal/logger"
)

// pendingBlob is one displaced media object awaiting deletion.
type pendingBlob struct {
	url      string
	attempts int
}

// BlobCleanupWorker deletes displaced media blobs asynchronously. Profile
// updates enqueue the old blob's URL and move on; this worker retries the
// deletion on an interval until it succeeds or the attempt budget runs out.
//
// Losing an entry on process exit is acceptable: an undeleted blob only
// costs storage, never correctness.
type BlobCleanupWorker struct {
	blobStore   adapter.BlobStore
	logger      *logger.Logger
	interval    time.Duration
	maxAttempts int

	mu      sync.Mutex
	pending []pendingBlob
}

// NewBlobCleanupWorker constructs the worker. It is idle until Run is
// called.
func NewBlobCleanupWorker(blobStore adapter.BlobStore, cfg config.Workers, logger *logger.Logger) *BlobCleanupWorker {
	interval := cfg.CleanupInterval
	if interval <= 0 {
		interval = time.Minute
	}
	maxAttempts := cfg.CleanupMaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 5
	}

	return &BlobCleanupWorker{
		blobStore:   blobStore,
		logger:      logger,
		interval:    interval,
		maxAttempts: maxAttempts,
	}
}

// Enqueue registers a blob URL for deletion. Safe for concurrent use; never
// blocks the caller.
func (w *BlobCleanupWorker) Enqueue(url string) {
	if url == "" {
		return
	}

	w.mu.Lock()
	w.pending = append(w.pending, pendingBlob{url: url})
	w.mu.Unlock()
}

// Run starts the background deletion loop. The goroutine exits when ctx is
// cancelled.
func (w *BlobCleanupWorker) Run(ctx context.Context) {
	go func() {
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				w.sweep(ctx)
			}
		}
	}()
}

// sweep attempts every pending deletion once. Failures go back into the
// queue with their attempt counter bumped; entries over the budget are
// dropped with a warning.
func (w *BlobCleanupWorker) sweep(ctx context.Context) {
	w.mu.Lock()
	batch := w.pending
	w.pending = nil
	w.mu.Unlock()

	var retry []pendingBlob
	for _, blob := range batch {
		if err := w.blobStore.Delete(ctx, blob.url); err != nil {
			blob.attempts++
			if blob.attempts >= w.maxAttempts {
				w.logger.Warn().Str("url", blob.url).Int("attempts", blob.attempts).Msg("dropping undeletable blob")
				continue
			}
			retry = append(retry, blob)
			continue
		}
		w.logger.Debug().Str("url", blob.url).Msg("deleted displaced blob")
	}

	if len(retry) > 0 {
		w.mu.Lock()
		w.pending = append(w.pending, retry...)
		w.mu.Unlock()
	}
}
