package grpc

import (
	"context"

	"github.com/dmitrijs2005/gophdocs/internal/logging"
	"github.com/dmitrijs2005/gophdocs/internal/server/models"
	"github.com/dmitrijs2005/gophdocs/internal/server/services"
)

type nopLogger struct{}

func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type fakeUsers struct {
	session *services.Session
	user    *models.User
	err     error

	gotEmail    string
	gotPassword []byte
	gotUserID   string
	gotRefresh  string
}

func (f *fakeUsers) SignUp(_ context.Context, email string, password []byte, _ string) (*services.Session, error) {
	f.gotEmail, f.gotPassword = email, append([]byte(nil), password...)
	return f.session, f.err
}

func (f *fakeUsers) SignIn(_ context.Context, email string, password []byte) (*services.Session, error) {
	f.gotEmail, f.gotPassword = email, append([]byte(nil), password...)
	return f.session, f.err
}

func (f *fakeUsers) RefreshSession(_ context.Context, token string) (*services.Session, error) {
	f.gotRefresh = token
	return f.session, f.err
}

func (f *fakeUsers) SignOut(_ context.Context, userID string) error {
	f.gotUserID = userID
	return f.err
}

func (f *fakeUsers) GetUser(_ context.Context, userID string) (*models.User, error) {
	f.gotUserID = userID
	return f.user, f.err
}

func (f *fakeUsers) UpdateUser(_ context.Context, userID string, _ *string, _ []byte) (*models.User, error) {
	f.gotUserID = userID
	return f.user, f.err
}

type fakeDocs struct {
	docs  []models.Document
	doc   *models.Document
	count int64
	err   error

	gotUserID  string
	gotOwnerID string
	gotFields  models.DocumentFields
}

func (f *fakeDocs) List(context.Context) ([]models.Document, error) { return f.docs, f.err }

func (f *fakeDocs) Search(context.Context, string) ([]models.Document, error) { return f.docs, f.err }

func (f *fakeDocs) Get(context.Context, string) (*models.Document, error) { return f.doc, f.err }

func (f *fakeDocs) Create(_ context.Context, userID string, fl models.DocumentFields) (*models.Document, error) {
	f.gotUserID, f.gotFields = userID, fl
	return f.doc, f.err
}

func (f *fakeDocs) Update(_ context.Context, userID, _, ownerID string, fl models.DocumentFields) (*models.Document, error) {
	f.gotUserID, f.gotOwnerID, f.gotFields = userID, ownerID, fl
	return f.doc, f.err
}

func (f *fakeDocs) Delete(_ context.Context, userID, _, ownerID string) error {
	f.gotUserID, f.gotOwnerID = userID, ownerID
	return f.err
}

func (f *fakeDocs) CountByOwner(_ context.Context, ownerID string) (int64, error) {
	f.gotOwnerID = ownerID
	return f.count, f.err
}

type fakeObjects struct {
	task    *models.UploadTask
	url     string
	err     error
	deleted []string
}

func (f *fakeObjects) UploadURL(_ context.Context, path, _ string, _ bool) (*models.UploadTask, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.task != nil {
		return f.task, nil
	}
	return &models.UploadTask{Path: path, URL: "http://store/" + path}, nil
}

func (f *fakeObjects) Delete(_ context.Context, path string) error {
	f.deleted = append(f.deleted, path)
	return f.err
}

func (f *fakeObjects) PublicURL(path string) (string, error) { return f.url + path, f.err }

func newTestServer(secret string, us *fakeUsers, ds *fakeDocs, obs *fakeObjects) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", nopLogger{}, us, ds, obs, secret)
}
