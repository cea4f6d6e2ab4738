package documents

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophdocs/internal/common"
	"github.com/dmitrijs2005/gophdocs/internal/dbx"
	"github.com/dmitrijs2005/gophdocs/internal/server/models"
)

const columns = `id, user_id, title, description, categories, keywords, file_url, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Document, error) {
	query := `SELECT ` + columns + ` FROM documents ORDER BY created_at DESC`
	return r.query(ctx, query)
}

// Search matches q as typed against title or description. Only the empty
// query lists everything; blanks are searched for literally.
func (r *PostgresRepository) Search(ctx context.Context, q string) ([]models.Document, error) {
	if q == "" {
		return r.List(ctx)
	}

	query := `SELECT ` + columns + ` FROM documents
		WHERE title ILIKE $1 ESCAPE '\' OR description ILIKE $1 ESCAPE '\'
		ORDER BY created_at DESC`
	return r.query(ctx, query, "%"+EscapeLike(q)+"%")
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Document, error) {
	query := `SELECT ` + columns + ` FROM documents WHERE id = $1`

	d, err := scanDocument(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return d, nil
}

func (r *PostgresRepository) Create(ctx context.Context, id, userID string, f models.DocumentFields) (*models.Document, error) {
	cats, kws, err := encodeTags(f)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO documents (id, user_id, title, description, categories, keywords, file_url)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6::jsonb, $7)
		RETURNING ` + columns

	d, err := scanDocument(r.db.QueryRowContext(ctx, query, id, userID, f.Title, f.Description, cats, kws, f.FileURL))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return d, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id, ownerID string, f models.DocumentFields) (*models.Document, error) {
	cats, kws, err := encodeTags(f)
	if err != nil {
		return nil, err
	}

	query := `UPDATE documents
		SET title = $3, description = $4, categories = $5::jsonb, keywords = $6::jsonb,
		    file_url = $7, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + columns

	d, err := scanDocument(r.db.QueryRowContext(ctx, query, id, ownerID, f.Title, f.Description, cats, kws, f.FileURL))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return d, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, ownerID string) error {
	query := `DELETE FROM documents WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	query := `SELECT count(*) FROM documents WHERE user_id = $1`

	var n int64
	if err := r.db.QueryRowContext(ctx, query, ownerID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]models.Document, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	docs := make([]models.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		docs = append(docs, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return docs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(s scanner) (*models.Document, error) {
	var (
		d        models.Document
		cats, kw []byte
	)
	if err := s.Scan(&d.ID, &d.UserID, &d.Title, &d.Description, &cats, &kw, &d.FileURL, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	if err := decodeTags(cats, &d.Categories); err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}
	if err := decodeTags(kw, &d.Keywords); err != nil {
		return nil, fmt.Errorf("keywords: %w", err)
	}
	return &d, nil
}

func encodeTags(f models.DocumentFields) (string, string, error) {
	enc := func(tags []string) (string, error) {
		if tags == nil {
			tags = []string{}
		}
		b, err := json.Marshal(tags)
		return string(b), err
	}
	cats, err := enc(f.Categories)
	if err != nil {
		return "", "", err
	}
	kws, err := enc(f.Keywords)
	if err != nil {
		return "", "", err
	}
	return cats, kws, nil
}

func decodeTags(raw []byte, dst *[]string) error {
	*dst = []string{}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return err
	}
	if *dst == nil {
		*dst = []string{}
	}
	return nil
}

func notFoundOr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	return fmt.Errorf("db error: %w", err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes the LIKE metacharacters so q matches literally.
func EscapeLike(q string) string {
	return likeEscaper.Replace(q)
}
