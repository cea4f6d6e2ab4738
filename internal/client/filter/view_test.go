package filter

import (
	"testing"

	"github.com/dmitrijs2005/gophdocs/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestView_RecomputesOnEveryChange(t *testing.T) {
	v := NewView()
	assert.Empty(t, v.Filtered())

	v.SetDocuments(docs())
	assert.Len(t, v.Filtered(), 4)
	assert.Equal(t, []string{"Finance", "Identity", "Tax"}, v.Categories())

	v.SetSearch("invoice")
	assert.Equal(t, []string{"1", "3"}, ids(v.Filtered()))

	v.ToggleCategory("Tax")
	assert.Equal(t, []string{"1"}, ids(v.Filtered()))
	assert.True(t, v.IsSelected("Tax"))

	v.ToggleCategory("Tax")
	assert.Equal(t, []string{"1", "3"}, ids(v.Filtered()))
	assert.False(t, v.IsSelected("Tax"))

	v.SelectCategories([]string{"Identity"})
	assert.Empty(t, v.Filtered())

	v.ClearFilters()
	assert.Len(t, v.Filtered(), 4)
	assert.Equal(t, "", v.Search())
	assert.Empty(t, v.Selected())
}

func TestView_NewDocumentsKeepCriteria(t *testing.T) {
	v := NewView()
	v.SetDocuments(docs())
	v.SetSearch("lease")
	assert.Equal(t, []string{"4"}, ids(v.Filtered()))

	// a refresh replaces the collection and the projection follows it
	v.SetDocuments([]models.Document{{ID: "9", Title: "New lease", Categories: []string{"Home"}}})
	assert.Equal(t, []string{"9"}, ids(v.Filtered()))
	assert.Equal(t, []string{"Home"}, v.Categories())
	assert.Equal(t, "lease", v.Search())

	d, ok := v.Find("9")
	assert.True(t, ok)
	assert.Equal(t, "New lease", d.Title)
	_, ok = v.Find("1")
	assert.False(t, ok)
}

func TestView_SelectedIsACopy(t *testing.T) {
	v := NewView()
	v.SelectCategories([]string{"A"})
	sel := v.Selected()
	sel[0] = "B"
	assert.True(t, v.IsSelected("A"))
}
