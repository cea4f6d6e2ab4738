package client

import (
	"github.com/dmitrijs2005/gophdocs/internal/api"
	"github.com/dmitrijs2005/gophdocs/internal/client/models"
)

func userFromAPI(u api.User) models.User {
	return models.User{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName, CreatedAt: u.CreatedAt}
}

func sessionFromAPI(s *api.Session) *models.Session {
	return &models.Session{
		AccessToken:      s.AccessToken,
		AccessExpiresAt:  s.AccessExpiresAt,
		RefreshToken:     s.RefreshToken,
		RefreshExpiresAt: s.RefreshExpiresAt,
		User:             userFromAPI(s.User),
	}
}

func fieldsToAPI(f models.DocumentFields) api.DocumentFields {
	return api.DocumentFields{
		Title:       f.Title,
		Description: f.Description,
		Categories:  f.Categories,
		Keywords:    f.Keywords,
		FileURL:     f.FileURL,
	}
}

func documentFromAPI(d api.Document) models.Document {
	return models.Document{
		ID:          d.ID,
		UserID:      d.UserID,
		Title:       d.Title,
		Description: d.Description,
		Categories:  d.Categories,
		Keywords:    d.Keywords,
		FileURL:     d.FileURL,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func documentsFromAPI(in []api.Document) []models.Document {
	out := make([]models.Document, 0, len(in))
	for _, d := range in {
		out = append(out, documentFromAPI(d))
	}
	return out
}
