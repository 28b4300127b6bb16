// Package employee implements the Employee repository using PostgreSQL.
// Like the client repository, the whole employee entity is one JSONB
// document per row with denormalized metadata columns for listing.
package employee

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

// Repo provides employee persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new employee repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListFilter narrows directory listings.
type ListFilter struct {
	Query      string // case-insensitive substring match on name
	OnlyActive bool
	Limit      int
	Offset     int
}

const createSQL = `
INSERT INTO employees (id, name, email, active, doc, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const saveSQL = `
INSERT INTO employees (id, name, email, active, doc, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
    name       = EXCLUDED.name,
    email      = EXCLUDED.email,
    active     = EXCLUDED.active,
    doc        = EXCLUDED.doc,
    updated_at = EXCLUDED.updated_at`

const getSQL = `SELECT doc FROM employees WHERE id = $1`

// Create inserts a new employee. Returns domain.ErrAlreadyExists when the ID
// is taken.
func (r *Repo) Create(ctx context.Context, e *domain.Employee) error {
	doc, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("employee %s: marshal: %w", e.ID, err)
	}

	_, err = r.pool.Exec(ctx, createSQL,
		e.ID, e.Name, e.Email, e.Active, doc, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, "employee", e.ID)
	}

	return nil
}

// Get loads the full employee document. Returns domain.ErrNotFound when absent.
func (r *Repo) Get(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	var doc []byte
	if err := r.pool.QueryRow(ctx, getSQL, id).Scan(&doc); err != nil {
		return nil, postgres.MapError(err, "employee", id)
	}

	var e domain.Employee
	if err := json.Unmarshal(doc, &e); err != nil {
		return nil, fmt.Errorf("employee %s: unmarshal: %w", id, err)
	}

	return &e, nil
}

// Save writes the whole employee document back, overwriting whatever is
// stored. The row is created if it does not exist.
func (r *Repo) Save(ctx context.Context, e *domain.Employee) error {
	doc, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("employee %s: marshal: %w", e.ID, err)
	}

	_, err = r.pool.Exec(ctx, saveSQL,
		e.ID, e.Name, e.Email, e.Active, doc, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, "employee", e.ID)
	}

	return nil
}

// List returns directory rows (metadata only, no assignment copies) ordered
// by name. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, f ListFilter) ([]*domain.Employee, error) {
	q := postgres.Builder.
		Select("id", "name", "email", "active", "created_at", "updated_at").
		From("employees").
		OrderBy("name ASC")

	if f.Query != "" {
		q = q.Where(sq.ILike{"name": "%" + f.Query + "%"})
	}
	if f.OnlyActive {
		q = q.Where(sq.Eq{"active": true})
	}
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		q = q.Offset(uint64(f.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("list employees: build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Active, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("list employees: scan: %w", err)
		}
		employees = append(employees, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	return employees, nil
}
