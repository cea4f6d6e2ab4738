package session

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophdocs/internal/client/models"
	"github.com/dmitrijs2005/gophdocs/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// RefreshFunc exchanges a refresh token for a new session.
type RefreshFunc func(ctx context.Context, refreshToken string) (*models.Session, error)

// Refresher renews the session shortly before the access token expires. It
// runs only between Start and Stop, i.e. while the client is in the
// foreground.
type Refresher struct {
	holder   *Holder
	refresh  RefreshFunc
	interval time.Duration
	margin   time.Duration
	logger   logging.Logger

	// Rejected reports errors meaning the refresh token is no longer
	// accepted; only those sign the user out. Any other failure keeps the
	// session and the refresh is retried on the next tick.
	Rejected func(error) bool

	now func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewRefresher(h *Holder, refresh RefreshFunc, interval, margin time.Duration, l logging.Logger) *Refresher {
	return &Refresher{
		holder:   h,
		refresh:  refresh,
		interval: interval,
		margin:   margin,
		logger:   l.With("module", "session_refresher"),
		now:      time.Now,
	}
}

// Start launches the background ticker. Calling Start twice is a no-op.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.Tick(ctx)
			}
		}
	}(r.done)
}

// Stop halts the ticker and waits for an in-flight refresh to finish.
func (r *Refresher) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// Tick refreshes the session if it expires within the margin.
func (r *Refresher) Tick(ctx context.Context) {
	s := r.holder.Get()
	if s == nil {
		return
	}
	if r.now().Add(r.margin).Before(AccessExpiry(s)) {
		return
	}

	fresh, err := r.refresh(ctx, s.RefreshToken)
	if err != nil {
		// stopped mid-flight; the session is still valid
		if ctx.Err() != nil {
			return
		}
		if r.Rejected != nil && r.Rejected(err) {
			r.logger.Warn(ctx, "session refresh rejected, signing out", "error", err.Error())
			r.holder.Set(nil)
			return
		}
		r.logger.Warn(ctx, "session refresh postponed", "error", err.Error())
		return
	}
	// the refresh func may already have published it
	if r.holder.Get() != fresh {
		r.holder.Set(fresh)
	}
}

// AccessExpiry is the access token's expiry. Sessions stored without an
// explicit expiry fall back to the token's exp claim; a token without one
// counts as expired.
func AccessExpiry(s *models.Session) time.Time {
	if !s.AccessExpiresAt.IsZero() {
		return s.AccessExpiresAt
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.AccessToken, claims); err != nil || claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
