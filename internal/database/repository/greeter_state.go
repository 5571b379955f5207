package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/Lucas-Developer/yunit/internal/database"
)

// GreeterStateRepo persists per-user session choices.
type GreeterStateRepo struct {
	db *sql.DB
}

func NewGreeterStateRepo(db *sql.DB) *GreeterStateRepo {
	return &GreeterStateRepo{db: db}
}

// LastSession returns the remembered session key for a user, or "" when
// the user has never selected one.
func (r *GreeterStateRepo) LastSession(ctx context.Context, username string) (string, error) {
	var key string
	err := r.db.QueryRowContext(ctx,
		`SELECT session_key FROM session_state WHERE username = ?`, username).Scan(&key)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return key, nil
}

// RecordSelection upserts the user's current choice and appends an audit
// row in the same transaction. Both rows share one timestamp.
func (r *GreeterStateRepo) RecordSelection(ctx context.Context, username, sessionKey string) error {
	now := database.Now()
	return database.WithTx(r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
	INSERT INTO session_state(username, session_key, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(username) DO UPDATE SET
	 session_key=excluded.session_key,
	 updated_at=excluded.updated_at;
	`, username, sessionKey, now); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
	INSERT INTO session_events(id, username, session_key, selected_at)
	VALUES (?, ?, ?, ?)
	`, uuid.NewString(), username, sessionKey, now)
		return err
	})
}

// RecentEvents lists the newest selection events, newest first.
func (r *GreeterStateRepo) RecentEvents(ctx context.Context, limit int) ([]SessionEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, username, session_key, selected_at
	FROM session_events ORDER BY selected_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []SessionEvent
	for rows.Next() {
		var e SessionEvent
		if err := rows.Scan(&e.ID, &e.Username, &e.SessionKey, &e.SelectedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
