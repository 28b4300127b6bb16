package testhelper

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/firmdesk/firmdesk-backend/internal/domain"
)

// SeedClient inserts a minimal client row and returns the domain entity.
func SeedClient(t *testing.T, pool *pgxpool.Pool) *domain.Client {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := &domain.Client{
		ID:           uuid.New(),
		Name:         fmt.Sprintf("Client %s", uuid.NewString()[:8]),
		ContactEmail: fmt.Sprintf("%s@example.com", uuid.NewString()[:8]),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	doc, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("testhelper: marshal client: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO clients (id, name, contact_email, doc, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.ContactEmail, doc, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed client: %v", err)
	}

	return c
}

// SeedEmployee inserts a minimal active employee row and returns the domain
// entity.
func SeedEmployee(t *testing.T, pool *pgxpool.Pool) *domain.Employee {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	e := &domain.Employee{
		ID:        uuid.New(),
		Name:      fmt.Sprintf("Employee %s", uuid.NewString()[:8]),
		Email:     fmt.Sprintf("%s@firm.example.com", uuid.NewString()[:8]),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	doc, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("testhelper: marshal employee: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO employees (id, name, email, active, doc, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.Name, e.Email, e.Active, doc, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed employee: %v", err)
	}

	return e
}
