package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"partyplanner/internal/domain"
	"partyplanner/internal/repository"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

type contactRepository struct {
	DB *sql.DB
}

// Open opens the SQLite database file at path.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)
	return db, nil
}

// NewContactRepository returns a domain.ContactRepository implemented with SQLite.
func NewContactRepository(db *sql.DB) domain.ContactRepository {
	return &contactRepository{DB: db}
}

func (r *contactRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Contact, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, full_name, email FROM contacts ORDER BY id LIMIT ? OFFSET ?`,
		params.PageSize, params.Offset())
	if err != nil {
		return nil, err
	}
	return repository.ScanContacts(rows)
}

func (r *contactRepository) Query(ctx context.Context, query string) ([]*domain.Contact, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("run generated query: %w", err)
	}
	return repository.ScanContacts(rows)
}

// EnsureSchema creates the contacts table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, repository.ContactsSchema)
	return err
}

// Seed inserts the seed contacts, leaving existing ids untouched.
func Seed(ctx context.Context, db *sql.DB) (int64, error) {
	var inserted int64
	for _, c := range repository.SeedContacts {
		res, err := db.ExecContext(ctx,
			`INSERT INTO contacts (id, full_name, email) VALUES (?, ?, ?) ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Name, c.Email)
		if err != nil {
			return inserted, fmt.Errorf("seed contact %d: %w", c.ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return inserted, err
		}
		inserted += n
	}
	return inserted, nil
}
