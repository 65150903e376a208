package notify

import (
	"context"
	"sync"
	"time"
)

// FetchFunc retrieves the current unread count from the server.
type FetchFunc func(ctx context.Context) (int, error)

// Poller keeps an unread-notification badge approximately fresh without a
// push channel: one fetch on start, then one per interval until stopped.
// Reads that fail are skipped silently and the previous count stands.
type Poller struct {
	fetch    FetchFunc
	interval time.Duration

	mu    sync.Mutex
	count int

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func NewPoller(fetch FetchFunc, interval time.Duration) *Poller {
	return &Poller{fetch: fetch, interval: interval}
}

// Start begins polling. The initial fetch runs on the polling goroutine so
// Start never blocks on the upstream; the ticker is released when ctx is
// cancelled or Stop is called. A Poller is started at most once.
func (p *Poller) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)
		p.refresh(ctx)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.refresh(ctx)
			}
		}
	}()
}

// Stop cancels polling and waits for the loop to exit. Safe to call more
// than once.
func (p *Poller) Stop() {
	if p.cancel == nil {
		return
	}
	p.once.Do(func() {
		p.cancel()
		<-p.done
	})
}

func (p *Poller) refresh(ctx context.Context) {
	count, err := p.fetch(ctx)
	if err != nil {
		return
	}
	p.mu.Lock()
	p.count = count
	p.mu.Unlock()
}

// Refresh forces an immediate fetch outside the interval.
func (p *Poller) Refresh(ctx context.Context) {
	p.refresh(ctx)
}

// Count returns the current badge value. Never negative.
func (p *Poller) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count
}

// MarkAllRead optimistically zeroes the badge, trusting the server call to
// persist it.
func (p *Poller) MarkAllRead() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.count = 0
}
