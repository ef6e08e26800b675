package database

import (
	"context"
	"pholio/database/model"
)

func (d *DB) createTables(ctx context.Context) error {
	_, err := d.D.ExecContext(ctx, model.CREATE_SESSION_TABLE)
	if err != nil {
		return err
	}
	return nil
}
