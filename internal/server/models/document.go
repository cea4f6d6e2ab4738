// Package models defines server-side data models persisted in the database.
package models

import "time"

// Document is the metadata row for an uploaded file. FileURL is the object
// storage key, e.g. "docs/invoice.pdf".
type Document struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Categories  []string
	Keywords    []string
	FileURL     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DocumentFields are the user-editable columns of a document.
type DocumentFields struct {
	Title       string
	Description string
	Categories  []string
	Keywords    []string
	FileURL     string
}

// UploadTask tells the client where to PUT the bytes of an object.
type UploadTask struct {
	Path      string
	URL       string
	ExpiresAt time.Time
}
