package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/dmitrijs2005/gophdocs/internal/client/models"
	"github.com/dmitrijs2005/gophdocs/internal/filex"
	"github.com/dmitrijs2005/gophdocs/internal/netx"
)

// download is a test seam for netx.Download.
var download = netx.Download

var errNotOwner = errors.New("only the owner can change this document")

// Refresh loads the whole collection and replaces the list. On failure the
// current list stays as it is.
func (a *App) Refresh(ctx context.Context) error {
	docs, err := a.documentService.List(ctx)
	if err != nil {
		return fmt.Errorf("load documents: %w", err)
	}
	a.view.SetDocuments(docs)
	a.loaded = true
	a.renderList()
	return nil
}

func (a *App) ensureLoaded(ctx context.Context) error {
	if a.loaded {
		return nil
	}
	docs, err := a.documentService.List(ctx)
	if err != nil {
		return fmt.Errorf("load documents: %w", err)
	}
	a.view.SetDocuments(docs)
	a.loaded = true
	return nil
}

// List prints the filtered list, loading it on first use.
func (a *App) List(ctx context.Context) error {
	if err := a.ensureLoaded(ctx); err != nil {
		return err
	}
	a.renderList()
	return nil
}

// Search sets the title filter; empty text clears it.
func (a *App) Search(ctx context.Context, text string) error {
	if err := a.ensureLoaded(ctx); err != nil {
		return err
	}
	a.view.SetSearch(text)
	a.renderList()
	return nil
}

func (a *App) ToggleCategory(ctx context.Context, category string) error {
	if err := a.ensureLoaded(ctx); err != nil {
		return err
	}
	a.view.ToggleCategory(a.resolveCategory(category))
	a.renderList()
	return nil
}

// resolveCategory maps typed input onto a known category, ignoring case
// when there is no exact match.
func (a *App) resolveCategory(c string) string {
	known := a.view.Categories()
	for _, k := range known {
		if k == c {
			return k
		}
	}
	for _, k := range known {
		if strings.EqualFold(k, c) {
			return k
		}
	}
	return c
}

func (a *App) Categories(ctx context.Context) error {
	if err := a.ensureLoaded(ctx); err != nil {
		return err
	}
	a.renderCategories()
	return nil
}

func (a *App) ClearFilters(ctx context.Context) error {
	if err := a.ensureLoaded(ctx); err != nil {
		return err
	}
	a.view.ClearFilters()
	a.renderList()
	return nil
}

// lookup prefers the loaded list and falls back to the backend.
func (a *App) lookup(ctx context.Context, id string) (models.Document, error) {
	if d, ok := a.view.Find(id); ok {
		return d, nil
	}
	d, err := a.documentService.Get(ctx, id)
	if err != nil {
		return models.Document{}, err
	}
	return *d, nil
}

func (a *App) ownedByMe(d models.Document) bool {
	u := a.currentUser()
	return u != nil && u.ID == d.UserID
}

// Show prints one document with its public URL.
func (a *App) Show(ctx context.Context, id string) error {
	d, err := a.lookup(ctx, id)
	if err != nil {
		return err
	}

	url := ""
	if d.FileURL != "" {
		url, err = a.documentService.PublicURL(ctx, d.FileURL)
		if err != nil {
			a.logger.Warn(ctx, "public url unavailable", "path", d.FileURL, "error", err.Error())
		}
	}
	a.renderDetail(d, url)
	return nil
}

// Download saves the document's file into the download directory under a
// name that does not overwrite existing files.
func (a *App) Download(ctx context.Context, id string) error {
	d, err := a.lookup(ctx, id)
	if err != nil {
		return err
	}
	if d.FileURL == "" {
		return errors.New("document has no file")
	}

	url, err := a.documentService.PublicURL(ctx, d.FileURL)
	if err != nil {
		return err
	}

	dir, err := filex.EnsureSubdDir(a.config.DownloadDir)
	if err != nil {
		return err
	}
	f, err := filex.CreateUnique(dir, path.Base(d.FileURL))
	if err != nil {
		return err
	}

	n, err := download(ctx, url, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(f.Name())
		return fmt.Errorf("download: %w", err)
	}

	fmt.Fprintf(a.out, "Saved %s (%d bytes).\n", f.Name(), n)
	return nil
}

// pickFile reads the file at p. Pipes and devices have no useful name, so
// their content gets a generated one.
func (a *App) pickFile(p string) (*models.FileInput, error) {
	fi, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	if fi.Mode().IsRegular() {
		return models.FileFromPath(p)
	}

	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return models.FileFromReader(f, a.now())
}

// clearField typed at a prompt empties a field that has a value.
const clearField = "-"

// promptInput asks for the metadata fields. Pressing Enter keeps the value
// from def; clearField empties it.
func (a *App) promptInput(def models.DocumentInput) (models.DocumentInput, error) {
	in := def
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Title", &in.Title},
		{"Description", &in.Description},
		{"Categories (comma separated)", &in.Categories},
		{"Keywords (comma separated)", &in.Keywords},
	}
	for _, f := range fields {
		prompt := f.prompt
		if *f.dst != "" {
			prompt = fmt.Sprintf("%s [%s] ('%s' clears)", f.prompt, *f.dst, clearField)
		}
		v, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return in, err
		}
		switch {
		case v == "":
		case v == clearField && *f.dst != "":
			*f.dst = ""
		default:
			*f.dst = v
		}
	}
	return in, nil
}

// Add uploads a local file together with its metadata.
func (a *App) Add(ctx context.Context) error {
	in, err := a.promptInput(models.DocumentInput{})
	if err != nil {
		return err
	}

	p, err := getSimpleText(a.reader, "File path", a.out)
	if err != nil {
		return err
	}
	var file *models.FileInput
	if p != "" {
		if file, err = a.pickFile(p); err != nil {
			return err
		}
	}

	d, err := a.documentService.Create(ctx, in, file)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Document %s created.\n", d.ID)
	return a.Refresh(ctx)
}

// Edit changes the metadata and, when a path is given, replaces the file.
func (a *App) Edit(ctx context.Context, id string) error {
	d, err := a.lookup(ctx, id)
	if err != nil {
		return err
	}
	if !a.ownedByMe(d) {
		return errNotOwner
	}

	in, err := a.promptInput(models.InputFrom(d))
	if err != nil {
		return err
	}

	p, err := getSimpleText(a.reader, fmt.Sprintf("New file path (Enter keeps %s)", d.FileURL), a.out)
	if err != nil {
		return err
	}
	var file *models.FileInput
	if p != "" {
		if file, err = a.pickFile(p); err != nil {
			return err
		}
	}

	if _, err := a.documentService.Update(ctx, d, in, file); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Document updated.")
	return a.Refresh(ctx)
}

// Delete removes a document after confirmation.
func (a *App) Delete(ctx context.Context, id string) error {
	d, err := a.lookup(ctx, id)
	if err != nil {
		return err
	}
	if !a.ownedByMe(d) {
		return errNotOwner
	}

	title := d.Title
	if strings.TrimSpace(title) == "" {
		title = d.ID
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete %q?", title), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.documentService.Delete(ctx, d); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Document deleted.")
	return a.Refresh(ctx)
}
