package metadata

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/gophdocs/internal/client/models"
)

const sessionKey = "session"

// SessionStore persists the signed-in session as JSON under one key.
type SessionStore struct {
	repo Repository
}

func NewSessionStore(repo Repository) *SessionStore {
	return &SessionStore{repo: repo}
}

// Load returns the stored session, or nil if there is none.
func (s *SessionStore) Load(ctx context.Context) (*models.Session, error) {
	raw, err := s.repo.Get(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode stored session: %w", err)
	}
	return &sess, nil
}

// Save stores sess, or removes the stored session when sess is nil.
func (s *SessionStore) Save(ctx context.Context, sess *models.Session) error {
	if sess == nil {
		return s.repo.Delete(ctx, sessionKey)
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.repo.Set(ctx, sessionKey, raw)
}
