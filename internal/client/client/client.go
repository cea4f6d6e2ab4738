package client

import (
	"context"

	"github.com/dmitrijs2005/gophdocs/internal/client/models"
)

// Client is everything the CLI needs from the backend.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	SignUp(ctx context.Context, email string, password []byte, displayName string) (*models.Session, error)
	SignIn(ctx context.Context, email string, password []byte) (*models.Session, error)
	SignOut(ctx context.Context) error
	RefreshSession(ctx context.Context, refreshToken string) (*models.Session, error)
	GetCurrentUser(ctx context.Context) (*models.User, error)
	UpdateUser(ctx context.Context, email *string, password []byte) (*models.User, error)

	ListDocuments(ctx context.Context) ([]models.Document, error)
	GetDocumentByID(ctx context.Context, id string) (*models.Document, error)
	SearchDocuments(ctx context.Context, query string) ([]models.Document, error)
	InsertDocument(ctx context.Context, fields models.DocumentFields) (*models.Document, error)
	UpdateDocument(ctx context.Context, id string, fields models.DocumentFields, ownerID string) (*models.Document, error)
	DeleteDocument(ctx context.Context, id string, ownerID string) error
	CountDocumentsForOwner(ctx context.Context, ownerID string) (int64, error)

	// UploadObject stores data under path and returns the stored path.
	UploadObject(ctx context.Context, data []byte, path, mimeType string, overwrite bool) (string, error)
	DeleteObject(ctx context.Context, path string) error
	GetPublicURL(ctx context.Context, path string) (string, error)
}
