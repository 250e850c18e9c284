package waypoints

import (
	"context"
	"database/sql"
	"errors"
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

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "order_index", "title", "content_key"}).
		AddRow(int64(5), int64(50), "The Bridge", "waypoints/5/content")
	mock.ExpectQuery(`(?s)SELECT\s+id,\s*order_index,\s*title,\s*content_key\s+FROM\s+waypoints\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	w, err := repo.GetByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if w.ID != 5 || w.OrderIndex != 50 || w.Title != "The Bridge" {
		t.Fatalf("unexpected waypoint: %+v", w)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+id,\s*order_index`).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 404)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestList_OrderedRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "order_index", "title", "content_key"}).
		AddRow(int64(1), int64(10), "First Steps", "waypoints/1/content").
		AddRow(int64(2), int64(20), "The Crossroads", "waypoints/2/content")
	mock.ExpectQuery(`(?s)SELECT\s+id,\s*order_index,\s*title,\s*content_key\s+FROM\s+waypoints\s+ORDER\s+BY\s+order_index`).
		WillReturnRows(rows)

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 2 || list[0].OrderIndex != 10 || list[1].OrderIndex != 20 {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestCreate_DuplicateOrderIndex(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+waypoints`).
		WithArgs(int64(10), "First Steps", "waypoints/x/content").
		WillReturnError(errors.New(`duplicate key value violates unique constraint "waypoints_order_index_key"`))

	_, err := repo.Create(context.Background(), &models.Waypoint{OrderIndex: 10, Title: "First Steps", ContentKey: "waypoints/x/content"})
	if !errors.Is(err, common.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}
