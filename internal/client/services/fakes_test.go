package services

import (
	"context"

	"github.com/dmitrijs2005/gophdocs/internal/client/client"
	"github.com/dmitrijs2005/gophdocs/internal/client/models"
)

type uploadCall struct {
	Data      []byte
	Path      string
	MimeType  string
	Overwrite bool
}

type updateCall struct {
	ID      string
	Fields  models.DocumentFields
	OwnerID string
}

// fakeClient records the calls the services make and returns canned results.
type fakeClient struct {
	client.Client

	calls []string

	user    *models.User
	userErr error

	signUpErr   error
	signInErr   error
	signInEmail string
	signInPass  []byte
	updateEmail *string
	updatePass  []byte
	updateErr   error

	uploads      []uploadCall
	uploadErr    error
	inserted     *models.DocumentFields
	insertErr    error
	updated      *updateCall
	updateDocErr error
	deletedDoc   [2]string
	deleteDocErr error
	deletedObj   []string
	deleteObjErr error

	docs  []models.Document
	count int64
}

func (f *fakeClient) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Ping(context.Context) error { f.record("Ping"); return nil }

func (f *fakeClient) SignUp(_ context.Context, email string, password []byte, displayName string) (*models.Session, error) {
	f.record("SignUp")
	f.signInEmail, f.signInPass = email, append([]byte(nil), password...)
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return &models.Session{AccessToken: "a", User: models.User{Email: email, DisplayName: displayName}}, nil
}

func (f *fakeClient) SignIn(_ context.Context, email string, password []byte) (*models.Session, error) {
	f.record("SignIn")
	f.signInEmail, f.signInPass = email, append([]byte(nil), password...)
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return &models.Session{AccessToken: "a", User: models.User{Email: email}}, nil
}

func (f *fakeClient) SignOut(context.Context) error { f.record("SignOut"); return nil }

func (f *fakeClient) GetCurrentUser(context.Context) (*models.User, error) {
	f.record("GetCurrentUser")
	return f.user, f.userErr
}

func (f *fakeClient) UpdateUser(_ context.Context, email *string, password []byte) (*models.User, error) {
	f.record("UpdateUser")
	f.updateEmail, f.updatePass = email, append([]byte(nil), password...)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	u := &models.User{ID: "u1"}
	if email != nil {
		u.Email = *email
	}
	return u, nil
}

func (f *fakeClient) ListDocuments(context.Context) ([]models.Document, error) {
	f.record("ListDocuments")
	return f.docs, nil
}

func (f *fakeClient) GetDocumentByID(_ context.Context, id string) (*models.Document, error) {
	f.record("GetDocumentByID")
	for _, d := range f.docs {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, client.ErrNotFound
}

func (f *fakeClient) SearchDocuments(context.Context, string) ([]models.Document, error) {
	f.record("SearchDocuments")
	return f.docs, nil
}

func (f *fakeClient) InsertDocument(_ context.Context, fields models.DocumentFields) (*models.Document, error) {
	f.record("InsertDocument")
	f.inserted = &fields
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	return &models.Document{ID: "d-new", UserID: "u1", Title: fields.Title, FileURL: fields.FileURL}, nil
}

func (f *fakeClient) UpdateDocument(_ context.Context, id string, fields models.DocumentFields, ownerID string) (*models.Document, error) {
	f.record("UpdateDocument")
	f.updated = &updateCall{ID: id, Fields: fields, OwnerID: ownerID}
	if f.updateDocErr != nil {
		return nil, f.updateDocErr
	}
	return &models.Document{ID: id, UserID: ownerID, Title: fields.Title, FileURL: fields.FileURL}, nil
}

func (f *fakeClient) DeleteDocument(_ context.Context, id string, ownerID string) error {
	f.record("DeleteDocument")
	f.deletedDoc = [2]string{id, ownerID}
	return f.deleteDocErr
}

func (f *fakeClient) CountDocumentsForOwner(context.Context, string) (int64, error) {
	f.record("CountDocumentsForOwner")
	return f.count, nil
}

func (f *fakeClient) UploadObject(_ context.Context, data []byte, path, mimeType string, overwrite bool) (string, error) {
	f.record("UploadObject")
	f.uploads = append(f.uploads, uploadCall{Data: data, Path: path, MimeType: mimeType, Overwrite: overwrite})
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return path, nil
}

func (f *fakeClient) DeleteObject(_ context.Context, path string) error {
	f.record("DeleteObject")
	f.deletedObj = append(f.deletedObj, path)
	return f.deleteObjErr
}

func (f *fakeClient) GetPublicURL(_ context.Context, path string) (string, error) {
	f.record("GetPublicURL")
	return "http://files.local/public/" + path, nil
}
