// Package filter narrows the document list on the client: a title search
// plus a category selection, applied to whatever the last fetch returned.
package filter

import (
	"sort"
	"strings"

	"github.com/dmitrijs2005/gophdocs/internal/client/models"
)

// Criteria is the current search text and the selected categories.
type Criteria struct {
	Search     string
	Categories []string
}

// Empty reports whether Apply would return its input unchanged.
func (c Criteria) Empty() bool {
	return strings.TrimSpace(c.Search) == "" && len(c.Categories) == 0
}

// Apply returns the documents matching c, in input order. A document matches
// when its lower-cased title contains the lower-cased search text (only if the
// text is not blank) and, if categories are selected, it carries at least one
// of them. docs is not modified.
func Apply(docs []models.Document, c Criteria) []models.Document {
	out := make([]models.Document, 0, len(docs))

	// the trimmed text decides whether to search, the untrimmed one is matched
	search := ""
	if strings.TrimSpace(c.Search) != "" {
		search = strings.ToLower(c.Search)
	}

	for _, d := range docs {
		if search != "" && !strings.Contains(strings.ToLower(d.Title), search) {
			continue
		}
		if len(c.Categories) > 0 && !sharesAny(d.Categories, c.Categories) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Categories returns the sorted, de-duplicated union of all categories.
func Categories(docs []models.Document) []string {
	seen := make(map[string]struct{})
	for _, d := range docs {
		for _, c := range d.Categories {
			seen[c] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func sharesAny(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}
