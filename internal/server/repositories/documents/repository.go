// Package documents stores document metadata rows in PostgreSQL.
package documents

import (
	"context"

	"github.com/dmitrijs2005/gophdocs/internal/server/models"
)

type Repository interface {
	// List returns every document, newest first.
	List(ctx context.Context) ([]models.Document, error)
	// Search matches query as a case-insensitive substring of title or
	// description, newest first.
	Search(ctx context.Context, query string) ([]models.Document, error)
	GetByID(ctx context.Context, id string) (*models.Document, error)
	Create(ctx context.Context, id, userID string, fields models.DocumentFields) (*models.Document, error)
	// Update and Delete only touch the row when it belongs to ownerID,
	// otherwise they return common.ErrorNotFound.
	Update(ctx context.Context, id, ownerID string, fields models.DocumentFields) (*models.Document, error)
	Delete(ctx context.Context, id, ownerID string) error
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
}
