// Package session keeps the signed-in state of the client: a holder that
// announces session changes, the auth gate that follows them and a
// refresher that renews the access token before it expires.
package session

import (
	"sync"

	"github.com/dmitrijs2005/gophdocs/internal/client/models"
)

type subscriber struct {
	id int
	fn func(*models.Session)
}

// Holder owns the current session. A nil session means signed out.
type Holder struct {
	mu      sync.Mutex
	current *models.Session
	subs    []subscriber
	nextID  int
}

func NewHolder() *Holder {
	return &Holder{}
}

func (h *Holder) Get() *models.Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// Set replaces the session and then calls every subscriber, in subscription
// order, on the calling goroutine.
func (h *Holder) Set(s *models.Session) {
	h.mu.Lock()
	h.current = s
	subs := append([]subscriber(nil), h.subs...)
	h.mu.Unlock()

	for _, sub := range subs {
		sub.fn(s)
	}
}

// Subscribe registers fn for future changes. The returned func removes it
// and may be called more than once.
func (h *Holder) Subscribe(fn func(*models.Session)) (unsubscribe func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	h.subs = append(h.subs, subscriber{id: id, fn: fn})

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for i, s := range h.subs {
			if s.id == id {
				h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
				return
			}
		}
	}
}
