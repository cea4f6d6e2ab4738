package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophdocs/internal/client/client"
	"github.com/dmitrijs2005/gophdocs/internal/client/models"
	"github.com/dmitrijs2005/gophdocs/internal/common"
	"github.com/dmitrijs2005/gophdocs/internal/logging"
)

var (
	ErrNoFileSelected   = errors.New("no file selected")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrDocumentNotFound = errors.New("no matching document")
)

type DocumentService interface {
	List(ctx context.Context) ([]models.Document, error)
	Get(ctx context.Context, id string) (*models.Document, error)
	Search(ctx context.Context, query string) ([]models.Document, error)
	Create(ctx context.Context, in models.DocumentInput, file *models.FileInput) (*models.Document, error)
	Update(ctx context.Context, doc models.Document, in models.DocumentInput, file *models.FileInput) (*models.Document, error)
	Delete(ctx context.Context, doc models.Document) error
	CountMine(ctx context.Context) (int64, error)
	PublicURL(ctx context.Context, path string) (string, error)
}

type documentService struct {
	client client.Client
	logger logging.Logger
}

func NewDocumentService(c client.Client, l logging.Logger) DocumentService {
	return &documentService{client: c, logger: l.With("module", "document_service")}
}

// ObjectPath is where a picked file is stored.
func ObjectPath(file *models.FileInput) string {
	return common.DocumentsPrefix + file.Name
}

func notFound(err error) error {
	if errors.Is(err, client.ErrNotFound) {
		return ErrDocumentNotFound
	}
	return err
}

func (s *documentService) currentUser(ctx context.Context) (*models.User, error) {
	u, err := s.client.GetCurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
	}
	return u, nil
}

func (s *documentService) List(ctx context.Context) ([]models.Document, error) {
	return s.client.ListDocuments(ctx)
}

func (s *documentService) Get(ctx context.Context, id string) (*models.Document, error) {
	d, err := s.client.GetDocumentByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return d, nil
}

func (s *documentService) Search(ctx context.Context, query string) ([]models.Document, error) {
	return s.client.SearchDocuments(ctx, query)
}

// Create uploads the file and then inserts the row pointing at it. An object
// uploaded before a failed insert is left in storage.
func (s *documentService) Create(ctx context.Context, in models.DocumentInput, file *models.FileInput) (*models.Document, error) {
	if file == nil {
		return nil, ErrNoFileSelected
	}
	if _, err := s.currentUser(ctx); err != nil {
		return nil, err
	}

	path, err := s.client.UploadObject(ctx, file.Data, ObjectPath(file), file.MimeType, true)
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}

	d, err := s.client.InsertDocument(ctx, in.Fields(path))
	if err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}
	return d, nil
}

// Update saves the new metadata, uploading file first when one is given.
// The previous object is removed only after the row points at the new one.
func (s *documentService) Update(ctx context.Context, doc models.Document, in models.DocumentInput, file *models.FileInput) (*models.Document, error) {
	u, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	path := doc.FileURL
	if file != nil {
		path, err = s.client.UploadObject(ctx, file.Data, ObjectPath(file), file.MimeType, true)
		if err != nil {
			return nil, fmt.Errorf("upload file: %w", err)
		}
	}

	updated, err := s.client.UpdateDocument(ctx, doc.ID, in.Fields(path), u.ID)
	if err != nil {
		return nil, fmt.Errorf("update document: %w", notFound(err))
	}

	if path != doc.FileURL && doc.FileURL != "" {
		if err := s.client.DeleteObject(ctx, doc.FileURL); err != nil {
			s.logger.Warn(ctx, "failed to delete replaced file", "path", doc.FileURL, "error", err.Error())
		}
	}
	return updated, nil
}

// Delete removes the stored object (best effort) and then the row.
func (s *documentService) Delete(ctx context.Context, doc models.Document) error {
	if doc.FileURL != "" {
		if err := s.client.DeleteObject(ctx, doc.FileURL); err != nil {
			s.logger.Warn(ctx, "failed to delete file", "path", doc.FileURL, "error", err.Error())
		}
	}

	if err := s.client.DeleteDocument(ctx, doc.ID, doc.UserID); err != nil {
		return fmt.Errorf("delete document: %w", notFound(err))
	}
	return nil
}

func (s *documentService) CountMine(ctx context.Context) (int64, error) {
	u, err := s.currentUser(ctx)
	if err != nil {
		return 0, err
	}
	return s.client.CountDocumentsForOwner(ctx, u.ID)
}

func (s *documentService) PublicURL(ctx context.Context, path string) (string, error) {
	return s.client.GetPublicURL(ctx, path)
}
