package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophdocs/internal/common"
	"github.com/dmitrijs2005/gophdocs/internal/server/models"
	"github.com/dmitrijs2005/gophdocs/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophdocs/internal/server/storage"
	"github.com/google/uuid"
)

// newDocumentID is a seam for tests.
var newDocumentID = uuid.NewString

// DocumentService serves document metadata. Reads are open to every
// signed-in user; writes are scoped to the owner.
type DocumentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewDocumentService(db *sql.DB, m repomanager.RepositoryManager) *DocumentService {
	return &DocumentService{db: db, repomanager: m}
}

func (s *DocumentService) List(ctx context.Context) ([]models.Document, error) {
	return s.repomanager.Documents(s.db).List(ctx)
}

func (s *DocumentService) Search(ctx context.Context, query string) ([]models.Document, error) {
	return s.repomanager.Documents(s.db).Search(ctx, query)
}

func (s *DocumentService) Get(ctx context.Context, id string) (*models.Document, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}
	return s.repomanager.Documents(s.db).GetByID(ctx, id)
}

// Create inserts a document owned by userID.
func (s *DocumentService) Create(ctx context.Context, userID string, f models.DocumentFields) (*models.Document, error) {
	if err := validateFields(f); err != nil {
		return nil, err
	}
	f = normalizeFields(f)
	return s.repomanager.Documents(s.db).Create(ctx, newDocumentID(), userID, f)
}

// Update rewrites the document only when ownerID is the acting user and owns
// the row. Any mismatch reads as common.ErrorNotFound.
func (s *DocumentService) Update(ctx context.Context, userID, id, ownerID string, f models.DocumentFields) (*models.Document, error) {
	if err := validateFields(f); err != nil {
		return nil, err
	}
	if ownerID != userID {
		return nil, common.ErrorNotFound
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}
	return s.repomanager.Documents(s.db).Update(ctx, id, ownerID, normalizeFields(f))
}

// Delete follows the same scoping as Update.
func (s *DocumentService) Delete(ctx context.Context, userID, id, ownerID string) error {
	if ownerID != userID {
		return common.ErrorNotFound
	}
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}
	return s.repomanager.Documents(s.db).Delete(ctx, id, ownerID)
}

func (s *DocumentService) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	if _, err := uuid.Parse(ownerID); err != nil {
		return 0, nil
	}
	return s.repomanager.Documents(s.db).CountByOwner(ctx, ownerID)
}

func validateFields(f models.DocumentFields) error {
	if err := storage.ValidateKey(f.FileURL); err != nil {
		return fmt.Errorf("file_url: %w", err)
	}
	return nil
}

// normalizeFields stores categories and keywords capitalized whatever the
// caller sent.
func normalizeFields(f models.DocumentFields) models.DocumentFields {
	f.Categories = common.NormalizeTags(f.Categories)
	f.Keywords = common.NormalizeTags(f.Keywords)
	return f
}
