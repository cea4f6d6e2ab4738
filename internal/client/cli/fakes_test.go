package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophdocs/internal/client/config"
	"github.com/dmitrijs2005/gophdocs/internal/client/filter"
	"github.com/dmitrijs2005/gophdocs/internal/client/models"
	"github.com/dmitrijs2005/gophdocs/internal/client/services"
	"github.com/dmitrijs2005/gophdocs/internal/client/session"
	"github.com/dmitrijs2005/gophdocs/internal/logging"
)

type fakeAuth struct {
	services.AuthService

	holder *session.Holder

	signInErr  error
	signUpErr  error
	signOutErr error
	changeErr  error

	gotEmail    string
	gotName     string
	gotPassword string

	user *models.User
}

func (f *fakeAuth) SignUp(_ context.Context, email string, password []byte, name string) (*models.Session, error) {
	f.gotEmail, f.gotName, f.gotPassword = email, name, string(password)
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	s := &models.Session{AccessToken: "a", User: models.User{ID: "u1", Email: email, DisplayName: name}}
	f.holder.Set(s)
	return s, nil
}

func (f *fakeAuth) SignIn(_ context.Context, email string, password []byte) (*models.Session, error) {
	f.gotEmail, f.gotPassword = email, string(password)
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	s := &models.Session{AccessToken: "a", User: models.User{ID: "u1", Email: email}}
	f.holder.Set(s)
	return s, nil
}

func (f *fakeAuth) SignOut(context.Context) error {
	f.holder.Set(nil)
	return f.signOutErr
}

func (f *fakeAuth) CurrentUser(context.Context) (*models.User, error) { return f.user, nil }

func (f *fakeAuth) ChangeEmail(_ context.Context, email string) (*models.User, error) {
	f.gotEmail = email
	if f.changeErr != nil {
		return nil, f.changeErr
	}
	return &models.User{ID: "u1", Email: email}, nil
}

func (f *fakeAuth) ChangePassword(_ context.Context, password []byte) error {
	f.gotPassword = string(password)
	return f.changeErr
}

type fakeDocs struct {
	services.DocumentService

	docs      []models.Document
	listErr   error
	listCalls int

	createdIn   *models.DocumentInput
	createdFile *models.FileInput
	createErr   error

	updatedDoc  *models.Document
	updatedIn   *models.DocumentInput
	updatedFile *models.FileInput

	deleted *models.Document
	count   int64
}

func (f *fakeDocs) List(context.Context) ([]models.Document, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Document(nil), f.docs...), nil
}

func (f *fakeDocs) Get(_ context.Context, id string) (*models.Document, error) {
	for _, d := range f.docs {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, services.ErrDocumentNotFound
}

func (f *fakeDocs) Create(_ context.Context, in models.DocumentInput, file *models.FileInput) (*models.Document, error) {
	if file == nil {
		return nil, services.ErrNoFileSelected
	}
	f.createdIn, f.createdFile = &in, file
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Document{ID: "d-new"}, nil
}

func (f *fakeDocs) Update(_ context.Context, d models.Document, in models.DocumentInput, file *models.FileInput) (*models.Document, error) {
	f.updatedDoc, f.updatedIn, f.updatedFile = &d, &in, file
	return &d, nil
}

func (f *fakeDocs) Delete(_ context.Context, d models.Document) error {
	f.deleted = &d
	return nil
}

func (f *fakeDocs) CountMine(context.Context) (int64, error) { return f.count, nil }

func (f *fakeDocs) PublicURL(_ context.Context, p string) (string, error) {
	return "http://files.local/public/" + p, nil
}

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(w io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func newTestApp(t *testing.T, auth *fakeAuth, docs *fakeDocs, input ...string) (*App, *bytes.Buffer) {
	t.Helper()

	h := session.NewHolder()
	auth.holder = h
	out := &bytes.Buffer{}

	a := &App{
		config:          &config.Config{DownloadDir: t.TempDir()},
		logger:          logging.Nop{},
		holder:          h,
		gate:            session.NewGate(),
		authService:     auth,
		documentService: docs,
		view:            filter.NewView(),
		reader:          readerFromLines(input...),
		out:             out,
		now:             func() time.Time { return time.UnixMilli(1700000000000) },
	}
	a.gate.Mount(context.Background(), h, func(context.Context) (*models.Session, error) { return nil, nil })
	t.Cleanup(a.gate.Unmount)

	return a, out
}

func signIn(a *App, id, email string) {
	a.holder.Set(&models.Session{AccessToken: "a", User: models.User{ID: id, Email: email}})
}
