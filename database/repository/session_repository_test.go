package repository

import (
	"context"
	"testing"

	"pholio/database"
	"pholio/database/model"

	"github.com/stretchr/testify/assert"
	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *database.DB {
	db, err := database.NewDB(":memory:")
	assert.NoError(t, err)
	err = db.Init(context.Background())
	assert.NoError(t, err)
	return db
}

func TestSessionRepository(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close(context.Background())
	repo := NewSessionRepository(db)
	ctx := context.Background()

	t.Run("GetMissingKey", func(t *testing.T) {
		_, err := repo.Get(ctx, model.KEY_ACCESS_TOKEN)
		assert.ErrorIs(t, err, database.ErrDoesNotExist)
	})

	t.Run("PutAndGet", func(t *testing.T) {
		err := repo.Put(ctx, model.KEY_ACCESS_TOKEN, "acc-1")
		assert.NoError(t, err)

		value, err := repo.Get(ctx, model.KEY_ACCESS_TOKEN)
		assert.NoError(t, err)
		assert.Equal(t, "acc-1", value)
	})

	t.Run("PutOverwrites", func(t *testing.T) {
		err := repo.Put(ctx, model.KEY_ACCESS_TOKEN, "acc-2")
		assert.NoError(t, err)

		value, err := repo.Get(ctx, model.KEY_ACCESS_TOKEN)
		assert.NoError(t, err)
		assert.Equal(t, "acc-2", value)
	})

	t.Run("DeleteMultipleKeys", func(t *testing.T) {
		err := repo.Put(ctx, model.KEY_REFRESH_TOKEN, "ref-1")
		assert.NoError(t, err)

		err = repo.Delete(ctx, model.KEY_ACCESS_TOKEN, model.KEY_REFRESH_TOKEN, model.KEY_USER_DATA)
		assert.NoError(t, err)

		_, err = repo.Get(ctx, model.KEY_ACCESS_TOKEN)
		assert.ErrorIs(t, err, database.ErrDoesNotExist)
		_, err = repo.Get(ctx, model.KEY_REFRESH_TOKEN)
		assert.ErrorIs(t, err, database.ErrDoesNotExist)
	})
}
