package repository

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log"
	"strings"

	"event-finder/data/models"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/pgx"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SqlRepo stores events in Postgres.
type SqlRepo struct {
	DB *sql.DB
}

func (sr *SqlRepo) Connection() *sql.DB {
	return sr.DB
}

// RunMigrations applies the embedded schema migrations to the named database.
func (sr *SqlRepo) RunMigrations(dbName string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open migrations source: %w", err)
	}

	driver, err := pgx.WithInstance(sr.DB, &pgx.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, dbName, driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Migrations complete")
	return nil
}

// Insert writes the event as a new row. The id must not already exist.
func (sr *SqlRepo) Insert(ctx context.Context, e models.Event) error {
	r := models.NewEventRecord(e)
	vals := models.GetValsFromModel(r)

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		r.TableName(),
		strings.Join(models.GetColumnNames(r, true), ", "),
		placeholders(len(vals)))

	stmt, err := sr.DB.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("error preparing query: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(ctx, vals...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateID
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

func (sr *SqlRepo) GetByID(ctx context.Context, id string) (models.Event, error) {
	var r models.EventRecord
	query := fmt.Sprintf("SELECT * FROM %s WHERE id = $1", r.TableName())
	row := sr.DB.QueryRowContext(ctx, query, id)

	if err := models.ScanRowToModel(&r, row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Event{}, ErrNotFound
		}
		return models.Event{}, fmt.Errorf("error scanning event: %w", err)
	}
	return r.Event(), nil
}

func (sr *SqlRepo) List(ctx context.Context) ([]models.Event, error) {
	var r models.EventRecord
	query := fmt.Sprintf("SELECT * FROM %s ORDER BY seq", r.TableName())

	rows, err := sr.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	out, err := models.ScanRowsToSliceOfModels(r, rows, 0)
	if err != nil {
		return nil, fmt.Errorf("error scanning events: %w", err)
	}

	records, ok := out.(*[]models.EventRecord)
	if !ok {
		return nil, fmt.Errorf("type assertion to []EventRecord failed")
	}

	events := make([]models.Event, len(*records))
	for i, rec := range *records {
		events[i] = rec.Event()
	}
	return events, nil
}

func (sr *SqlRepo) Count(ctx context.Context) (int, error) {
	var n int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", models.EventRecord{}.TableName())
	if err := sr.DB.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting events: %w", err)
	}
	return n, nil
}

func placeholders(n int) string {
	ph := make([]string, n)
	for i := 1; i <= n; i++ {
		ph[i-1] = fmt.Sprintf("$%d", i)
	}
	return strings.Join(ph, ", ")
}
