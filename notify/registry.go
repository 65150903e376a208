package notify

import (
	"context"
	"sync"
	"time"
)

// Registry holds one badge poller per live session. Pollers start on the
// first badge request after login and are stopped on logout or when the
// session sweeper purges their session.
type Registry struct {
	baseCtx  context.Context
	interval time.Duration

	mu      sync.Mutex
	pollers map[string]*Poller
}

// NewRegistry creates a registry whose pollers run until baseCtx is
// cancelled; their lifetime is the application's, not a single request's.
func NewRegistry(baseCtx context.Context, interval time.Duration) *Registry {
	return &Registry{
		baseCtx:  baseCtx,
		interval: interval,
		pollers:  make(map[string]*Poller),
	}
}

// Get returns the poller for a session, starting one with fetch when absent.
func (r *Registry) Get(sessionID string, fetch FetchFunc) *Poller {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.pollers[sessionID]; ok {
		return p
	}
	p := NewPoller(fetch, r.interval)
	p.Start(r.baseCtx)
	r.pollers[sessionID] = p
	return p
}

// Lookup returns the poller for a session if one is running.
func (r *Registry) Lookup(sessionID string) (*Poller, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pollers[sessionID]
	return p, ok
}

// Remove stops and forgets the poller for a session.
func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	p, ok := r.pollers[sessionID]
	if ok {
		delete(r.pollers, sessionID)
	}
	r.mu.Unlock()
	if ok {
		p.Stop()
	}
}

// RemoveAll stops every poller; used at shutdown.
func (r *Registry) RemoveAll() {
	r.mu.Lock()
	pollers := r.pollers
	r.pollers = make(map[string]*Poller)
	r.mu.Unlock()
	for _, p := range pollers {
		p.Stop()
	}
}
