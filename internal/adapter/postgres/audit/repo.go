// Package audit implements the audit log repository using PostgreSQL.
// The log is append-only; rows are never updated or deleted.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/firmdesk/firmdesk-backend/internal/adapter/postgres"
	"github.com/firmdesk/firmdesk-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const insertSQL = `
INSERT INTO audit_log (id, actor, entity_type, entity_id, action, details, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// Log appends one audit record. Callers treat it as fire-and-forget: a
// failed append is logged and counted, never surfaced to the caller of the
// operation that produced it.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	actorJSON, err := json.Marshal(record.Actor)
	if err != nil {
		return fmt.Errorf("audit_record %s: marshal actor: %w", record.ID, err)
	}

	detailsJSON, err := json.Marshal(record.Details)
	if err != nil {
		return fmt.Errorf("audit_record %s: marshal details: %w", record.ID, err)
	}

	_, err = r.pool.Exec(ctx, insertSQL,
		record.ID,
		actorJSON,
		string(record.EntityType),
		uuidPtrToPgUUID(record.EntityID),
		string(record.Action),
		detailsJSON,
		record.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "audit_record", record.ID)
	}

	return nil
}

// ListByEntity returns the history for a specific entity, ordered by
// created_at DESC, limited to `limit` records. Returns an empty slice (not
// nil) when there is no history.
func (r *Repo) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	q := postgres.Builder.
		Select("id", "actor", "entity_type", "entity_id", "action", "details", "created_at").
		From("audit_log").
		Where(sq.Eq{"entity_type": string(entityType), "entity_id": entityID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	return r.list(ctx, q)
}

// ListByActor returns records produced by one actor, ordered by created_at
// DESC with pagination.
func (r *Repo) ListByActor(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error) {
	q := postgres.Builder.
		Select("id", "actor", "entity_type", "entity_id", "action", "details", "created_at").
		From("audit_log").
		Where(sq.Expr("actor->>'id' = ?", actorID.String())).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	return r.list(ctx, q)
}

func (r *Repo) list(ctx context.Context, q sq.SelectBuilder) ([]domain.AuditRecord, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("list audit_records: build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit_records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.AuditRecord, 0)
	for rows.Next() {
		var (
			rec         domain.AuditRecord
			actorJSON   []byte
			detailsJSON []byte
			entityType  string
			action      string
			entityID    pgtype.UUID
		)
		if err := rows.Scan(&rec.ID, &actorJSON, &entityType, &entityID, &action, &detailsJSON, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("list audit_records: scan: %w", err)
		}

		if err := json.Unmarshal(actorJSON, &rec.Actor); err != nil {
			return nil, fmt.Errorf("audit_record %s: unmarshal actor: %w", rec.ID, err)
		}
		if len(detailsJSON) > 0 {
			if err := json.Unmarshal(detailsJSON, &rec.Details); err != nil {
				return nil, fmt.Errorf("audit_record %s: unmarshal details: %w", rec.ID, err)
			}
		}

		rec.EntityType = domain.EntityType(entityType)
		rec.Action = domain.AuditAction(action)
		if entityID.Valid {
			id := uuid.UUID(entityID.Bytes)
			rec.EntityID = &id
		}

		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audit_records: %w", err)
	}

	return records, nil
}

// uuidPtrToPgUUID converts a *uuid.UUID to pgtype.UUID (nil → NULL).
func uuidPtrToPgUUID(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}
