// Package models defines client-side data models used by the gophdocs CLI.
package models

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/gophdocs/internal/common"
)

// Document is a stored file plus its metadata, as listed by the backend.
// FileURL is the storage path, e.g. "docs/invoice.pdf".
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

// DocumentInput is what the user types on the add and edit screens.
// Categories and keywords are comma-separated.
type DocumentInput struct {
	Title       string
	Description string
	Categories  string
	Keywords    string
}

// DocumentFields are the columns written on insert and update.
type DocumentFields struct {
	Title       string
	Description string
	Categories  []string
	Keywords    []string
	FileURL     string
}

// Fields converts the raw input into normalized columns pointing at fileURL.
func (in DocumentInput) Fields(fileURL string) DocumentFields {
	return DocumentFields{
		Title:       in.Title,
		Description: in.Description,
		Categories:  ParseTags(in.Categories),
		Keywords:    ParseTags(in.Keywords),
		FileURL:     fileURL,
	}
}

// InputFrom pre-fills the edit screen from an existing document.
func InputFrom(d Document) DocumentInput {
	return DocumentInput{
		Title:       d.Title,
		Description: d.Description,
		Categories:  strings.Join(d.Categories, ", "),
		Keywords:    strings.Join(d.Keywords, ", "),
	}
}

// Capitalize trims s, upper-cases its first rune and lower-cases the rest:
// "  fINANCE " -> "Finance".
func Capitalize(s string) string {
	return common.CapitalizeTag(s)
}

// ParseTags splits comma-separated input into capitalized tags. Empty tags
// are dropped, so "" and " , " both yield an empty list.
func ParseTags(s string) []string {
	tags := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if tag := Capitalize(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
