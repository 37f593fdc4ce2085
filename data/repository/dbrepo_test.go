package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"event-finder/data/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eventColumns = []string{
	"seq", "id", "title", "description", "date", "max_participants",
	"current_participants", "location_name", "lat", "lng", "category", "tags", "image_url",
}

func newMockRepo(t *testing.T) (*SqlRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &SqlRepo{DB: db}, mock
}

func TestSqlRepo_Insert(t *testing.T) {
	const insertQuery = `INSERT INTO events \(id, title, description, date, max_participants, current_participants, location_name, lat, lng, category, tags, image_url\) VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, \$7, \$8, \$9, \$10, \$11, \$12\)`

	t.Run("success", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectPrepare(insertQuery).
			ExpectExec().
			WithArgs("a", "First", "A test event", "2025-06-01T09:00:00Z", 25, 0,
				"Dublin Park", 53.3498, -6.2603, "", `["test"]`, "").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Insert(context.Background(), testEvent("a", "First"))
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectPrepare(insertQuery).
			ExpectExec().
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		err := repo.Insert(context.Background(), testEvent("a", "First"))
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("other failure", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectPrepare(insertQuery).
			ExpectExec().
			WillReturnError(errors.New("connection reset"))

		err := repo.Insert(context.Background(), testEvent("a", "First"))
		assert.EqualError(t, err, "error executing query: connection reset")
	})
}

func TestSqlRepo_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		rows := sqlmock.NewRows(eventColumns).
			AddRow(1, "a", "First", "desc", "2025-06-01", 25, 0, "Dublin Park", 53.3498, -6.2603, "Sports", `["test"]`, "")
		mock.ExpectQuery(`SELECT \* FROM events WHERE id = \$1`).WithArgs("a").WillReturnRows(rows)

		e, err := repo.GetByID(context.Background(), "a")
		require.NoError(t, err)
		assert.Equal(t, "First", e.Title)
		assert.Equal(t, models.CategorySports, e.Category)
		assert.Equal(t, models.Location{Name: "Dublin Park", Lat: 53.3498, Lng: -6.2603}, e.Location)
		assert.Equal(t, []string{"test"}, e.Tags)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`SELECT \* FROM events WHERE id = \$1`).WithArgs("nope").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSqlRepo_List(t *testing.T) {
	repo, mock := newMockRepo(t)
	rows := sqlmock.NewRows(eventColumns).
		AddRow(1, "a", "First", "desc", "2025-06-01", 25, 0, "Dublin Park", 53.3498, -6.2603, "", "[]", "").
		AddRow(2, "b", "Second", "desc", "2025-06-02", 40, 3, "Cork", 51.8985, -8.4756, "Music", `["jazz"]`, "https://example.com/x.png")
	mock.ExpectQuery(`SELECT \* FROM events ORDER BY seq`).WillReturnRows(rows)

	events, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "a", events[0].ID)
	assert.Equal(t, "b", events[1].ID)
	assert.Equal(t, 3, events[1].CurrentParticipants)
	assert.Equal(t, "https://example.com/x.png", events[1].ImageURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSqlRepo_Count(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM events`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "$1, $2, $3", placeholders(3))
	assert.Equal(t, "", placeholders(0))
}
