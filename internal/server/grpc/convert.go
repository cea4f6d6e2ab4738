package grpc

import (
	"github.com/dmitrijs2005/gophdocs/internal/api"
	"github.com/dmitrijs2005/gophdocs/internal/server/models"
	"github.com/dmitrijs2005/gophdocs/internal/server/services"
)

func toAPIUser(u *models.User) api.User {
	return api.User{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName, CreatedAt: u.CreatedAt}
}

func toAPISession(s *services.Session) *api.Session {
	out := &api.Session{
		AccessToken:      s.AccessToken,
		AccessExpiresAt:  s.AccessExpiresAt,
		RefreshToken:     s.RefreshToken,
		RefreshExpiresAt: s.RefreshExpiresAt,
	}
	if s.User != nil {
		out.User = toAPIUser(s.User)
	}
	return out
}

func toAPIDocument(d *models.Document) *api.Document {
	return &api.Document{
		ID:     d.ID,
		UserID: d.UserID,
		DocumentFields: api.DocumentFields{
			Title:       d.Title,
			Description: d.Description,
			Categories:  d.Categories,
			Keywords:    d.Keywords,
			FileURL:     d.FileURL,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toAPIDocumentList(docs []models.Document) *api.DocumentList {
	out := &api.DocumentList{Documents: make([]api.Document, 0, len(docs))}
	for i := range docs {
		out.Documents = append(out.Documents, *toAPIDocument(&docs[i]))
	}
	return out
}

func fromAPIFields(f api.DocumentFields) models.DocumentFields {
	return models.DocumentFields{
		Title:       f.Title,
		Description: f.Description,
		Categories:  f.Categories,
		Keywords:    f.Keywords,
		FileURL:     f.FileURL,
	}
}
