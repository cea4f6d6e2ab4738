package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/gophdocs/internal/client/client"
	"github.com/dmitrijs2005/gophdocs/internal/client/config"
	"github.com/dmitrijs2005/gophdocs/internal/client/filter"
	"github.com/dmitrijs2005/gophdocs/internal/client/models"
	"github.com/dmitrijs2005/gophdocs/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophdocs/internal/client/services"
	"github.com/dmitrijs2005/gophdocs/internal/client/session"
	"github.com/dmitrijs2005/gophdocs/internal/logging"
)

// sessionStore is the part of metadata.SessionStore the app uses.
type sessionStore interface {
	Load(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, s *models.Session) error
}

type App struct {
	config *config.Config
	logger logging.Logger

	holder    *session.Holder
	gate      *session.Gate
	refresher *session.Refresher
	store     sessionStore

	authService     services.AuthService
	documentService services.DocumentService

	// list screen state, touched only from the REPL goroutine
	view   *filter.View
	loaded bool

	reader  *bufio.Reader
	out     io.Writer
	now     func() time.Time
	closers []func() error
}

// NewApp wires the client: the local session database, the gRPC client,
// the services and the session machinery around one Holder.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewText(os.Stderr, c.LogLevel)

	db, err := client.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("init session database: %w", err)
	}

	holder := session.NewHolder()

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, holder, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create api client: %w", err)
	}

	refresher := session.NewRefresher(holder, apiClient.RefreshSession, c.RefreshCheckInterval, c.RefreshMargin, logger)
	refresher.Rejected = func(err error) bool { return errors.Is(err, client.ErrUnauthorized) }

	a := &App{
		config:          c,
		logger:          logger.With("module", "cli"),
		holder:          holder,
		gate:            session.NewGate(),
		refresher:       refresher,
		store:           metadata.NewSessionStore(metadata.NewSQLiteRepository(db)),
		authService:     services.NewAuthService(apiClient),
		documentService: services.NewDocumentService(apiClient, logger),
		view:            filter.NewView(),
		reader:          bufio.NewReader(os.Stdin),
		out:             os.Stdout,
		now:             time.Now,
	}
	a.closers = []func() error{a.authService.Close, db.Close}

	return a, nil
}

// Run mounts the auth gate, starts the session refresher and runs the REPL
// until the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	unsubscribe := a.holder.Subscribe(func(s *models.Session) { a.persistSession(ctx, s) })
	defer unsubscribe()

	fmt.Fprintln(a.out, "gophdocs client (type 'help' for commands)")

	a.gate.OnChange(a.onGateChange)
	a.gate.Mount(ctx, a.holder, a.restoreSession)
	defer a.gate.Unmount()

	a.refresher.Start(ctx)
	defer a.refresher.Stop()

	runREPL(ctx, a, a.status, a.reader)
	return nil
}

func (a *App) close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Warn(context.Background(), "close failed", "error", err.Error())
		}
	}
}

// restoreSession publishes the session saved by a previous run.
func (a *App) restoreSession(ctx context.Context) (*models.Session, error) {
	s, err := a.store.Load(ctx)
	if err != nil {
		a.logger.Warn(ctx, "stored session unreadable", "error", err.Error())
		return nil, err
	}
	if s != nil {
		a.holder.Set(s)
	}
	return s, nil
}

func (a *App) persistSession(ctx context.Context, s *models.Session) {
	if err := a.store.Save(ctx, s); err != nil {
		a.logger.Warn(ctx, "failed to persist session", "error", err.Error())
	}
}

// onGateChange runs on whichever goroutine changed the session.
func (a *App) onGateChange(st session.State) {
	switch st {
	case session.StateAuthenticated:
		if s := a.holder.Get(); s != nil {
			fmt.Fprintf(a.out, "Signed in as %s.\n", s.User.Email)
		}
	case session.StateUnauthenticated:
		fmt.Fprintln(a.out, "Not signed in (type 'login' or 'register').")
	}
}

// isLoggedIn follows the gate. The list state of a previous session is
// dropped the first time the REPL sees the user signed out.
func (a *App) isLoggedIn() bool {
	if a.gate.State() == session.StateAuthenticated {
		return true
	}
	if a.loaded {
		a.view = filter.NewView()
		a.loaded = false
	}
	return false
}

func (a *App) currentUser() *models.User {
	if s := a.holder.Get(); s != nil {
		u := s.User
		return &u
	}
	return nil
}

func (a *App) status() string {
	if u := a.currentUser(); u != nil && a.gate.State() == session.StateAuthenticated {
		return fmt.Sprintf(" (%s)", u.Email)
	}
	return ""
}
