package repository

import (
	"context"
	"database/sql"
	"fmt"
	"pholio/database"
	L "pholio/logger"
	"time"
)

type SessionRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, keys ...string) error
}

type sessionRepository struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) SessionRepository {
	return sessionRepository{db: db}
}

func (s sessionRepository) Get(ctx context.Context, key string) (string, error) {
	row := s.db.D.QueryRowContext(ctx,
		"SELECT value FROM session WHERE key=?", key)
	var value string
	err := row.Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", database.ErrDoesNotExist
		}
		return "", fmt.Errorf("could not get session entry %s: %w", key, err)
	}
	return value, nil
}

func (s sessionRepository) Put(ctx context.Context, key string, value string) error {
	_, err := s.db.D.ExecContext(ctx,
		`INSERT INTO session (key, value, updated_at) VALUES (?,?,?)
         ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`,
		key,
		value,
		database.ToTimeStr(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("could not store session entry %s: %w", key, err)
	}
	L.Debug(fmt.Sprintf("Stored session entry: %s", key))
	return nil
}

func (s sessionRepository) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		_, err := s.db.D.ExecContext(ctx, "DELETE FROM session WHERE key=?", key)
		if err != nil {
			return fmt.Errorf("could not delete session entry %s: %w", key, err)
		}
	}
	return nil
}
