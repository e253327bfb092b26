// Package notify implements the Notifier port as an auto-dismissing banner
// that the web GUI renders on each page load.
package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/ericfisherdev/grocerylist/internal/domain/model"
	"github.com/ericfisherdev/grocerylist/internal/domain/port/driven"
)

// DefaultDismissAfter is how long a notice stays visible.
const DefaultDismissAfter = 2 * time.Second

// Compile-time interface satisfaction check.
var _ driven.Notifier = (*Banner)(nil)

// Banner holds at most one notice. Posting a new notice replaces the current
// one and restarts the dismissal timer; a timer belonging to an older notice
// never clears a newer one.
type Banner struct {
	mu           sync.Mutex
	current      model.Notice
	generation   uint64
	timer        *time.Timer
	dismissAfter time.Duration
	logger       *slog.Logger
}

// NewBanner creates a Banner. A non-positive dismissAfter selects
// DefaultDismissAfter.
func NewBanner(dismissAfter time.Duration, logger *slog.Logger) *Banner {
	if dismissAfter <= 0 {
		dismissAfter = DefaultDismissAfter
	}
	return &Banner{
		dismissAfter: dismissAfter,
		logger:       logger,
	}
}

// Notify shows message and schedules its dismissal. It never blocks.
func (b *Banner) Notify(message string, kind model.NoticeKind) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.generation++
	gen := b.generation
	b.current = model.Notice{Message: message, Kind: kind}

	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.dismissAfter, func() { b.dismiss(gen) })

	b.logger.Debug("notice posted", "kind", kind, "message", message)
}

// Current returns the notice currently showing, or the zero Notice.
func (b *Banner) Current() model.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Stop cancels any pending dismissal. Used on shutdown.
func (b *Banner) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}

func (b *Banner) dismiss(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if gen != b.generation {
		return
	}
	b.current = model.Notice{}
}
