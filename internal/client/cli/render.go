package cli

import (
	"fmt"
	"mime"
	"path"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/gophdocs/internal/client/models"
)

const timeLayout = "2006-01-02 15:04"

func (a *App) renderList() {
	docs := a.view.Filtered()

	var filters []string
	if s := a.view.Search(); strings.TrimSpace(s) != "" {
		filters = append(filters, fmt.Sprintf("search %q", s))
	}
	if sel := a.view.Selected(); len(sel) > 0 {
		filters = append(filters, "categories "+strings.Join(sel, ", "))
	}
	if len(filters) > 0 {
		fmt.Fprintf(a.out, "Filter: %s\n", strings.Join(filters, "; "))
	}

	if len(docs) == 0 {
		if len(a.view.Documents()) == 0 {
			fmt.Fprintln(a.out, "No documents yet. Use 'add' to upload one.")
		} else {
			fmt.Fprintln(a.out, "No documents match the filter.")
		}
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORIES\tCREATED")
	for _, d := range docs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.ID, d.Title, strings.Join(d.Categories, ", "), d.CreatedAt.Local().Format(timeLayout))
	}
	_ = tw.Flush()
	fmt.Fprintf(a.out, "%d of %d documents\n", len(docs), len(a.view.Documents()))
}

func (a *App) renderCategories() {
	cats := a.view.Categories()
	if len(cats) == 0 {
		fmt.Fprintln(a.out, "No categories.")
		return
	}
	for _, c := range cats {
		mark := " "
		if a.view.IsSelected(c) {
			mark = "x"
		}
		fmt.Fprintf(a.out, "[%s] %s\n", mark, c)
	}
}

func (a *App) renderDetail(d models.Document, url string) {
	fmt.Fprintf(a.out, "Title:       %s\n", d.Title)
	fmt.Fprintf(a.out, "Description: %s\n", d.Description)
	fmt.Fprintf(a.out, "Categories:  %s\n", strings.Join(d.Categories, ", "))
	fmt.Fprintf(a.out, "Keywords:    %s\n", strings.Join(d.Keywords, ", "))
	fmt.Fprintf(a.out, "File:        %s\n", d.FileURL)
	if t := mime.TypeByExtension(path.Ext(d.FileURL)); t != "" {
		fmt.Fprintf(a.out, "Type:        %s\n", t)
	}
	if url != "" {
		fmt.Fprintf(a.out, "URL:         %s\n", url)
	}
	fmt.Fprintf(a.out, "Created:     %s\n", d.CreatedAt.Local().Format(timeLayout))
	fmt.Fprintf(a.out, "Updated:     %s\n", d.UpdatedAt.Local().Format(timeLayout))
	if a.ownedByMe(d) {
		fmt.Fprintln(a.out, "(editable)")
	}
}
