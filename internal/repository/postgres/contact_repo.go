package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"partyplanner/internal/domain"
	"partyplanner/internal/repository"
)

type contactRepository struct {
	DB *sql.DB
}

// Open opens a Postgres connection pool for dsn.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// NewContactRepository returns a domain.ContactRepository implemented with Postgres.
func NewContactRepository(db *sql.DB) domain.ContactRepository {
	return &contactRepository{DB: db}
}

func (r *contactRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Contact, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, full_name, email FROM contacts ORDER BY id LIMIT $1 OFFSET $2`,
		params.PageSize, params.Offset())
	if err != nil {
		return nil, err
	}
	return repository.ScanContacts(rows)
}

// Query runs generated SQL inside a read-only transaction.
func (r *contactRepository) Query(ctx context.Context, query string) ([]*domain.Contact, error) {
	tx, err := r.DB.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("run generated query: %w", err)
	}
	contacts, err := repository.ScanContacts(rows)
	if err != nil {
		return nil, err
	}
	return contacts, tx.Commit()
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
			`INSERT INTO contacts (id, full_name, email) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`,
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
