package filter

import (
	"github.com/dmitrijs2005/gophdocs/internal/client/models"
)

// View is the list screen state. Every setter recomputes the projection, so
// Filtered always reflects the current documents and criteria.
type View struct {
	documents  []models.Document
	filtered   []models.Document
	categories []string
	search     string
	selected   []string
}

func NewView() *View {
	v := &View{}
	v.recompute()
	return v
}

// SetDocuments replaces the collection wholesale, e.g. after a fetch.
func (v *View) SetDocuments(docs []models.Document) {
	v.documents = docs
	v.categories = Categories(docs)
	v.recompute()
}

func (v *View) SetSearch(s string) {
	v.search = s
	v.recompute()
}

// ToggleCategory selects c, or deselects it if it is already selected.
func (v *View) ToggleCategory(c string) {
	for i, s := range v.selected {
		if s == c {
			v.selected = append(v.selected[:i:i], v.selected[i+1:]...)
			v.recompute()
			return
		}
	}
	v.selected = append(v.selected, c)
	v.recompute()
}

func (v *View) SelectCategories(cs []string) {
	v.selected = append([]string(nil), cs...)
	v.recompute()
}

func (v *View) ClearFilters() {
	v.search = ""
	v.selected = nil
	v.recompute()
}

func (v *View) recompute() {
	v.filtered = Apply(v.documents, Criteria{Search: v.search, Categories: v.selected})
}

func (v *View) Documents() []models.Document { return v.documents }
func (v *View) Filtered() []models.Document  { return v.filtered }
func (v *View) Categories() []string         { return v.categories }
func (v *View) Search() string               { return v.search }

// Selected returns a copy of the selected categories.
func (v *View) Selected() []string {
	return append([]string(nil), v.selected...)
}

// IsSelected reports whether category c is part of the selection.
func (v *View) IsSelected(c string) bool {
	for _, s := range v.selected {
		if s == c {
			return true
		}
	}
	return false
}

// Find looks a document up by ID in the full collection.
func (v *View) Find(id string) (models.Document, bool) {
	for _, d := range v.documents {
		if d.ID == id {
			return d, true
		}
	}
	return models.Document{}, false
}
