package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionEvent is a persisted row of the local session trail.
type SessionEvent struct {
	ID         string
	EventType  string
	Subject    string
	Path       string
	Detail     string
	OccurredAt time.Time
}

// SessionEventRepository stores session trail entries.
type SessionEventRepository interface {
	Create(ctx context.Context, event *SessionEvent) error
	ListRecent(ctx context.Context, limit int) ([]SessionEvent, error)
}

type sessionEventRepository struct {
	pool *pgxpool.Pool
}

// NewSessionEventRepository builds repository.
func NewSessionEventRepository(pool *pgxpool.Pool) SessionEventRepository {
	return &sessionEventRepository{pool: pool}
}

func (r *sessionEventRepository) Create(ctx context.Context, event *SessionEvent) error {
	const query = `
        INSERT INTO session_events (id, event_type, subject, path, detail, occurred_at)
        VALUES ($1,$2,$3,$4,$5,$6)`
	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.EventType,
		event.Subject,
		event.Path,
		event.Detail,
		event.OccurredAt,
	)
	return err
}

func (r *sessionEventRepository) ListRecent(ctx context.Context, limit int) ([]SessionEvent, error) {
	const query = `
        SELECT id, event_type, subject, path, detail, occurred_at
        FROM session_events ORDER BY occurred_at DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []SessionEvent
	for rows.Next() {
		var event SessionEvent
		if err := rows.Scan(
			&event.ID,
			&event.EventType,
			&event.Subject,
			&event.Path,
			&event.Detail,
			&event.OccurredAt,
		); err != nil {
			return nil, err
		}
		result = append(result, event)
	}
	return result, rows.Err()
}
