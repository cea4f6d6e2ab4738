package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophdocs/internal/common"
	"github.com/dmitrijs2005/gophdocs/internal/dbx"
	"github.com/dmitrijs2005/gophdocs/internal/server/models"
	"github.com/dmitrijs2005/gophdocs/internal/server/repositories/documents"
	"github.com/dmitrijs2005/gophdocs/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophdocs/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var errBoom = errors.New("boom")

func init() {
	bcryptCost = bcrypt.MinCost
}

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User

	createErr error
	getErr    error
	updateErr error

	created *models.User
}

func newFakeUsers(us ...*models.User) *fakeUsersRepo {
	f := &fakeUsersRepo{byEmail: map[string]*models.User{}, byID: map[string]*models.User{}}
	for _, u := range us {
		f.byEmail[u.Email] = u
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	u.ID = "u-new"
	u.CreatedAt = time.Now()
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	f.created = u
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) UpdateEmail(_ context.Context, id, email string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	u, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	delete(f.byEmail, u.Email)
	u.Email = email
	f.byEmail[email] = u
	return nil
}

func (f *fakeUsersRepo) UpdatePasswordHash(_ context.Context, id string, hash []byte) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	u, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.PasswordHash = hash
	return nil
}

type fakeRefreshRepo struct {
	tokens    map[string]*models.RefreshToken
	findErr   error
	delErr    error
	createErr error
	revoked   []string

	// stolenAfterFind drops the token right after Find returns it, as a
	// concurrent rotation would.
	stolenAfterFind bool
}

func newFakeRefresh() *fakeRefreshRepo {
	return &fakeRefreshRepo{tokens: map[string]*models.RefreshToken{}}
}

func (f *fakeRefreshRepo) Create(_ context.Context, userID, token string, validity time.Duration) (time.Time, error) {
	if f.createErr != nil {
		return time.Time{}, f.createErr
	}
	exp := time.Now().Add(validity)
	f.tokens[token] = &models.RefreshToken{UserID: userID, Token: token, Expires: exp}
	return exp, nil
}

func (f *fakeRefreshRepo) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	t, ok := f.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if f.stolenAfterFind {
		delete(f.tokens, token)
	}
	return t, nil
}

func (f *fakeRefreshRepo) Delete(_ context.Context, token string) error {
	if f.delErr != nil {
		return f.delErr
	}
	if _, ok := f.tokens[token]; !ok {
		return common.ErrorNotFound
	}
	delete(f.tokens, token)
	return nil
}

func (f *fakeRefreshRepo) DeleteForUser(_ context.Context, userID string) error {
	f.revoked = append(f.revoked, userID)
	for k, v := range f.tokens {
		if v.UserID == userID {
			delete(f.tokens, k)
		}
	}
	return nil
}

type fakeDocsRepo struct {
	docs []models.Document
	err  error

	lastSearch string
	lastOwner  string
}

func (f *fakeDocsRepo) List(context.Context) ([]models.Document, error) { return f.docs, f.err }

func (f *fakeDocsRepo) Search(_ context.Context, q string) ([]models.Document, error) {
	f.lastSearch = q
	return f.docs, f.err
}

func (f *fakeDocsRepo) GetByID(_ context.Context, id string) (*models.Document, error) {
	for i := range f.docs {
		if f.docs[i].ID == id {
			return &f.docs[i], nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeDocsRepo) Create(_ context.Context, id, userID string, fl models.DocumentFields) (*models.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	d := models.Document{ID: id, UserID: userID, Title: fl.Title, FileURL: fl.FileURL, Categories: fl.Categories, Keywords: fl.Keywords}
	f.docs = append(f.docs, d)
	return &d, nil
}

func (f *fakeDocsRepo) Update(_ context.Context, id, ownerID string, fl models.DocumentFields) (*models.Document, error) {
	f.lastOwner = ownerID
	for i := range f.docs {
		if f.docs[i].ID == id && f.docs[i].UserID == ownerID {
			f.docs[i].Title = fl.Title
			f.docs[i].FileURL = fl.FileURL
			f.docs[i].Categories = fl.Categories
			f.docs[i].Keywords = fl.Keywords
			return &f.docs[i], nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeDocsRepo) Delete(_ context.Context, id, ownerID string) error {
	f.lastOwner = ownerID
	for i := range f.docs {
		if f.docs[i].ID == id && f.docs[i].UserID == ownerID {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeDocsRepo) CountByOwner(_ context.Context, ownerID string) (int64, error) {
	var n int64
	for _, d := range f.docs {
		if d.UserID == ownerID {
			n++
		}
	}
	return n, f.err
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRefreshRepo
	d *fakeDocsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.r }
func (m *fakeRepoManager) Documents(dbx.DBTX) documents.Repository         { return m.d }
