package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophdocs/internal/client/models"
)

type State int

const (
	StateLoading State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// LookupFunc resolves the session present at start-up, if any.
type LookupFunc func(ctx context.Context) (*models.Session, error)

// Gate decides which command set the client offers. It is loading until the
// initial lookup resolves and afterwards follows the holder's notifications.
type Gate struct {
	mu          sync.Mutex
	state       State
	unsubscribe func()
	onChange    func(State)
}

func NewGate() *Gate {
	return &Gate{state: StateLoading}
}

// OnChange registers fn to be told about every state transition.
func (g *Gate) OnChange(fn func(State)) {
	g.mu.Lock()
	g.onChange = fn
	g.mu.Unlock()
}

func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Mount performs the initial lookup and subscribes to h. A lookup error
// counts as "no session".
func (g *Gate) Mount(ctx context.Context, h *Holder, lookup LookupFunc) {
	s, err := lookup(ctx)
	if err != nil {
		s = nil
	}
	g.apply(s)

	unsub := h.Subscribe(g.apply)
	g.mu.Lock()
	g.unsubscribe = unsub
	g.mu.Unlock()
}

// Unmount stops following the holder.
func (g *Gate) Unmount() {
	g.mu.Lock()
	unsub := g.unsubscribe
	g.unsubscribe = nil
	g.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

func (g *Gate) apply(s *models.Session) {
	next := StateUnauthenticated
	if s != nil {
		next = StateAuthenticated
	}

	g.mu.Lock()
	changed := g.state != next
	g.state = next
	fn := g.onChange
	g.mu.Unlock()

	if changed && fn != nil {
		fn(next)
	}
}
