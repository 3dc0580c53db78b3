package posts

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/miniblog/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_AssignsIDAndTimestamps(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+posts\s*\(title,\s*content,\s*author_id,\s*published\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+id,\s*created_at,\s*updated_at\s*$`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(10), now, now)
	mock.ExpectQuery(q).
		WithArgs("Hello World", "body", int64(1), true).
		WillReturnRows(rows)

	p := &Post{Title: "Hello World", Content: "body", AuthorID: 1, Published: true}
	got, err := repo.Create(context.Background(), p)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 10 || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected post: %+v", got)
	}
	if p.ID != 0 {
		t.Fatalf("input snapshot must not be mutated")
	}
}

func TestGetByID_Absent(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*FROM\s+posts\s+WHERE\s+id\s*=\s*\$1`

	mock.ExpectQuery(q).WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListByAuthor_ScansAllRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*FROM\s+posts\s+WHERE\s+author_id\s*=\s*\$1`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "content", "author_id", "published", "created_at", "updated_at"}).
		AddRow(int64(2), "Second Post", "b", int64(1), true, now, now).
		AddRow(int64(1), "First Post", "a", int64(1), false, now, now)
	mock.ExpectQuery(q).WithArgs(int64(1)).WillReturnRows(rows)

	got, err := repo.ListByAuthor(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByAuthor error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 1 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestDeleteAll_ReturnsCount(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+posts\s*$`).WillReturnResult(sqlmock.NewResult(0, 5))

	n, err := repo.DeleteAll(context.Background())
	if err != nil {
		t.Fatalf("DeleteAll error: %v", err)
	}
	if n != 5 {
		t.Fatalf("expected 5, got %d", n)
	}
}
