package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"pholio/config"
	L "pholio/logger"
	"time"

	_ "modernc.org/sqlite"
)

const DateTimeFormat = "2006-01-02 15:04:05.000 -0700"

var ErrDoesNotExist error = errors.New("record does not exist in the database")

type DB struct {
	D             *sql.DB
	connectionUri string
}

func NewDB(dbPath string) (*DB, error) {
	d, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	return &DB{
		D:             d,
		connectionUri: dbPath,
	}, nil
}

func (d *DB) Init(ctx context.Context) error {
	return d.createTables(ctx)
}

func (d *DB) Close(ctx context.Context) error {
	return d.D.Close()
}

// GetDBFilePath returns the session database path inside the pholio config
// directory, creating the directory if needed.
func GetDBFilePath(ctx context.Context) (string, error) {
	configDir, err := config.GetDefaultConfigDir()
	if err != nil {
		return "", err
	}
	dbPath := filepath.Join(configDir, "session.db")
	L.Debug(fmt.Sprintf("Using session database: %s", dbPath))
	return dbPath, nil
}

func ToTimeStr(t time.Time) string {
	return t.Local().Format(DateTimeFormat)
}

func FromTimeStr(ts string) time.Time {
	t, err := time.Parse(DateTimeFormat, ts)
	if err != nil {
		L.Error(fmt.Errorf("couldnt parse time for %s: %w", ts, err))
		return time.Now()
	}
	return t
}
