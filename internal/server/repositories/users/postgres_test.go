package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophdocs/internal/common"
	"github.com/dmitrijs2005/gophdocs/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

const (
	insertQ      = `(?s)^INSERT\s+INTO\s+users\s*\(email,\s*display_name,\s*password_hash\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*created_at$`
	byEmailQ     = `(?s)^SELECT\s+id,\s*email,\s*display_name,\s*password_hash,\s*created_at\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1$`
	byIDQ        = `(?s)^SELECT\s+id,\s*email,\s*display_name,\s*password_hash,\s*created_at\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1$`
	updEmailQ    = `^UPDATE\s+users\s+SET\s+email\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1$`
	updPasswordQ = `^UPDATE\s+users\s+SET\s+password_hash\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1$`
)

var userCols = []string{"id", "email", "display_name", "password_hash", "created_at"}

func TestCreate_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(insertQ).
		WithArgs("alice@example.com", "Alice", []byte("hash")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("u-1", now))

	got, err := repo.Create(context.Background(), &models.User{Email: "alice@example.com", DisplayName: "Alice", PasswordHash: []byte("hash")})
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	assert.Equal(t, now, got.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(insertQ).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &models.User{Email: "alice@example.com"})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(insertQ).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Email: "a@b.c"})
	require.ErrorContains(t, err, "db error: db down")
}

func TestGetByEmail(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(byEmailQ).WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow("u-1", "alice@example.com", "Alice", []byte("h"), now))
	mock.ExpectQuery(byEmailQ).WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	got, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, &models.User{ID: "u-1", Email: "alice@example.com", DisplayName: "Alice", PasswordHash: []byte("h"), CreatedAt: now}, got)

	_, err = repo.GetByEmail(context.Background(), "ghost@example.com")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetByID_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(byIDQ).WithArgs("u-1").WillReturnError(errors.New("db err"))

	_, err := repo.GetByID(context.Background(), "u-1")
	require.ErrorContains(t, err, "db error: db err")
}

func TestUpdateEmail(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(updEmailQ).WithArgs("u-1", "new@example.com").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(updEmailQ).WithArgs("u-2", "new@example.com").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(updEmailQ).WithArgs("u-3", "taken@example.com").WillReturnError(&pgconn.PgError{Code: "23505"})

	require.NoError(t, repo.UpdateEmail(context.Background(), "u-1", "new@example.com"))
	require.ErrorIs(t, repo.UpdateEmail(context.Background(), "u-2", "new@example.com"), common.ErrorNotFound)
	require.ErrorIs(t, repo.UpdateEmail(context.Background(), "u-3", "taken@example.com"), common.ErrorAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePasswordHash(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(updPasswordQ).WithArgs("u-1", []byte("h2")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(updPasswordQ).WithArgs("u-1", []byte("h3")).WillReturnError(errors.New("boom"))

	require.NoError(t, repo.UpdatePasswordHash(context.Background(), "u-1", []byte("h2")))
	require.ErrorContains(t, repo.UpdatePasswordHash(context.Background(), "u-1", []byte("h3")), "db error: boom")
}
