// Package client implements the Client repository using PostgreSQL.
// The whole client entity (profile, document tree, assignment copies) is
// stored as one JSONB document per row; a few metadata columns are
// denormalized for directory listing. Save is a deliberate last-write-wins
// upsert: there is no cross-entity transaction anywhere in the system.
package client

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/firmdesk/firmdesk-backend/internal/adapter/postgres"
	"github.com/firmdesk/firmdesk-backend/internal/domain"
)

// Repo provides client persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new client repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListFilter narrows directory listings.
type ListFilter struct {
	Query  string // case-insensitive substring match on name
	Limit  int
	Offset int
}

const createSQL = `
INSERT INTO clients (id, name, contact_email, doc, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

const saveSQL = `
INSERT INTO clients (id, name, contact_email, doc, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
    name          = EXCLUDED.name,
    contact_email = EXCLUDED.contact_email,
    doc           = EXCLUDED.doc,
    updated_at    = EXCLUDED.updated_at`

const getSQL = `SELECT doc FROM clients WHERE id = $1`

// Create inserts a new client. Returns domain.ErrAlreadyExists when the ID
// is taken.
func (r *Repo) Create(ctx context.Context, c *domain.Client) error {
	doc, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("client %s: marshal: %w", c.ID, err)
	}

	_, err = r.pool.Exec(ctx, createSQL,
		c.ID, c.Name, c.ContactEmail, doc, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, "client", c.ID)
	}

	return nil
}

// Get loads the full client document. Returns domain.ErrNotFound when absent.
func (r *Repo) Get(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	var doc []byte
	if err := r.pool.QueryRow(ctx, getSQL, id).Scan(&doc); err != nil {
		return nil, postgres.MapError(err, "client", id)
	}

	var c domain.Client
	if err := json.Unmarshal(doc, &c); err != nil {
		return nil, fmt.Errorf("client %s: unmarshal: %w", id, err)
	}

	return &c, nil
}

// Save writes the whole client document back, overwriting whatever is stored.
// The row is created if it does not exist.
func (r *Repo) Save(ctx context.Context, c *domain.Client) error {
	doc, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("client %s: marshal: %w", c.ID, err)
	}

	_, err = r.pool.Exec(ctx, saveSQL,
		c.ID, c.Name, c.ContactEmail, doc, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, "client", c.ID)
	}

	return nil
}

// List returns directory rows (metadata only, no document tree) ordered by
// name. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, f ListFilter) ([]*domain.Client, error) {
	q := postgres.Builder.
		Select("id", "name", "contact_email", "created_at", "updated_at").
		From("clients").
		OrderBy("name ASC")

	if f.Query != "" {
		q = q.Where(sq.ILike{"name": "%" + f.Query + "%"})
	}
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		q = q.Offset(uint64(f.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("list clients: build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.ContactEmail, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("list clients: scan: %w", err)
		}
		clients = append(clients, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	return clients, nil
}
