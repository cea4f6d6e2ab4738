package services

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophdocs/internal/common"
	"github.com/dmitrijs2005/gophdocs/internal/server/config"
	"github.com/dmitrijs2005/gophdocs/internal/server/models"
	"github.com/dmitrijs2005/gophdocs/internal/server/storage"
)

// ObjectService brokers access to the object store. Uploads and downloads go
// straight to the store through presigned URLs.
type ObjectService struct {
	storage       storage.ObjectStorage
	publicBaseURL string
	ttl           time.Duration
}

func NewObjectService(st storage.ObjectStorage, cfg *config.Config) *ObjectService {
	return &ObjectService{
		storage:       st,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		ttl:           cfg.PresignTTL,
	}
}

// UploadURL returns a presigned PUT for path. With overwrite unset an
// existing object makes it fail with common.ErrorAlreadyExists.
func (s *ObjectService) UploadURL(ctx context.Context, path, contentType string, overwrite bool) (*models.UploadTask, error) {
	if err := storage.ValidateKey(path); err != nil {
		return nil, err
	}

	if !overwrite {
		exists, err := s.storage.Exists(ctx, path)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, common.ErrorAlreadyExists
		}
	}

	u, err := s.storage.PresignPut(ctx, path, contentType, s.ttl)
	if err != nil {
		return nil, err
	}
	return &models.UploadTask{Path: path, URL: u, ExpiresAt: time.Now().Add(s.ttl)}, nil
}

// DownloadURL returns a presigned GET for path.
func (s *ObjectService) DownloadURL(ctx context.Context, path string) (string, error) {
	if err := storage.ValidateKey(path); err != nil {
		return "", err
	}
	return s.storage.PresignGet(ctx, path, s.ttl)
}

func (s *ObjectService) Delete(ctx context.Context, path string) error {
	if err := storage.ValidateKey(path); err != nil {
		return err
	}
	return s.storage.Delete(ctx, path)
}

// PublicURL is the stable link served by the HTTP endpoint, e.g.
// https://host/public/docs/Invoice%20Q1.pdf.
func (s *ObjectService) PublicURL(path string) (string, error) {
	if err := storage.ValidateKey(path); err != nil {
		return "", err
	}
	segs := strings.Split(path, "/")
	for i, seg := range segs {
		segs[i] = url.PathEscape(seg)
	}
	return s.publicBaseURL + "/public/" + strings.Join(segs, "/"), nil
}
