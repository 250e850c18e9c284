package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/akarpovs/waygate/internal/common"
	"github.com/akarpovs/waygate/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+users\s*\(username,\s*password_hash,\s*salt,\s*role\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+id\s*$`

	rows := sqlmock.NewRows([]string{"id"}).AddRow("42")
	mock.ExpectQuery(q).
		WithArgs("alice", []byte("hash"), []byte("salt"), "student").
		WillReturnRows(rows)

	u := &models.User{Username: "alice", PasswordHash: []byte("hash"), Salt: []byte("salt"), Role: common.RoleStudent}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "42" || got.Username != "alice" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestCreate_Duplicate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WithArgs("alice", []byte("hash"), []byte("salt"), "student").
		WillReturnError(errors.New(`duplicate key value violates unique constraint "users_username_key"`))

	u := &models.User{Username: "alice", PasswordHash: []byte("hash"), Salt: []byte("salt"), Role: common.RoleStudent}
	_, err := repo.Create(context.Background(), u)
	if !errors.Is(err, common.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WithArgs("alice", []byte("hash"), []byte("salt"), "student").
		WillReturnError(errors.New("db down"))

	u := &models.User{Username: "alice", PasswordHash: []byte("hash"), Salt: []byte("salt"), Role: common.RoleStudent}
	_, err := repo.Create(context.Background(), u)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByUsername_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+id,\s*username,\s*password_hash,\s*salt,\s*role\s+FROM\s+users\s+WHERE\s+username\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "salt", "role"}).
		AddRow("u-1", "alice", []byte("hash"), []byte("salt"), "admin")
	mock.ExpectQuery(q).
		WithArgs("alice").
		WillReturnRows(rows)

	got, err := repo.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUsername error: %v", err)
	}
	if got.ID != "u-1" || got.Role != common.RoleAdmin {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByUsername_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,\s*username`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetByID_UnknownRoleDegrades(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "salt", "role"}).
		AddRow("u-2", "bob", []byte("hash"), []byte("salt"), "superuser")
	mock.ExpectQuery(`(?s)SELECT\s+id,\s*username.*WHERE\s+id\s*=\s*\$1`).
		WithArgs("u-2").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "u-2")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Role != common.RoleUnknown {
		t.Fatalf("expected RoleUnknown for unrecognized role, got %q", got.Role)
	}
}
