package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophdocs/internal/client/client"
	"github.com/dmitrijs2005/gophdocs/internal/client/config"
	"github.com/dmitrijs2005/gophdocs/internal/client/models"
	"github.com/dmitrijs2005/gophdocs/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophdocs/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SessionDBPath = filepath.Join(t.TempDir(), "session.db")
	cfg.ServerEndpointAddr = "127.0.0.1:1"
	cfg.RefreshCheckInterval = time.Hour
	cfg.RequestTimeout = time.Second
	cfg.LogLevel = "error"
	return cfg
}

func TestNewApp_RunSignedOut(t *testing.T) {
	capturePrints(t)
	cfg := testConfig(t)

	a, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	a.out = &out
	a.reader = rdr("help\nexit\n")

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "Not signed in")
	assert.Equal(t, session.StateUnauthenticated, a.gate.State())
}

func TestNewApp_RestoresStoredSession(t *testing.T) {
	capturePrints(t)
	cfg := testConfig(t)
	ctx := context.Background()

	db, err := client.InitDatabase(ctx, cfg.SessionDBPath)
	require.NoError(t, err)
	stored := &models.Session{
		AccessToken:     "a",
		AccessExpiresAt: time.Now().Add(time.Hour),
		RefreshToken:    "r",
		User:            models.User{ID: "u1", Email: "me@x.io"},
	}
	require.NoError(t, metadata.NewSessionStore(metadata.NewSQLiteRepository(db)).Save(ctx, stored))
	require.NoError(t, db.Close())

	a, err := NewApp(ctx, cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	a.out = &out
	a.reader = rdr("exit\n")

	require.NoError(t, a.Run(ctx))
	assert.Contains(t, out.String(), "Signed in as me@x.io.")
	assert.Equal(t, session.StateAuthenticated, a.gate.State())
	require.NotNil(t, a.holder.Get())
	assert.Equal(t, "r", a.holder.Get().RefreshToken)
}

func TestNewApp_BadDatabasePath(t *testing.T) {
	cfg := testConfig(t)
	cfg.SessionDBPath = filepath.Join(t.TempDir(), "missing", "dir", "session.db")

	_, err := NewApp(context.Background(), cfg)
	require.Error(t, err)
}
