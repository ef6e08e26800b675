package session

import (
	"context"
	"net/http"
	"testing"

	"pholio/database"
	"pholio/database/repository"
	"pholio/model"

	"github.com/stretchr/testify/assert"
	_ "modernc.org/sqlite"
)

func setupManager(t *testing.T) *Manager {
	db, err := database.NewDB(":memory:")
	assert.NoError(t, err)
	err = db.Init(context.Background())
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close(context.Background()) })
	return NewManager(repository.NewSessionRepository(db))
}

func TestTokens(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	t.Run("EmptyBeforeLogin", func(t *testing.T) {
		assert.Empty(t, m.AccessToken(ctx))
		assert.Empty(t, m.RefreshToken(ctx))
	})

	t.Run("SaveTokensPersistsBoth", func(t *testing.T) {
		err := m.SaveTokens(ctx, &model.TokenPair{Access: "acc-1", Refresh: "ref-1"})
		assert.NoError(t, err)
		assert.Equal(t, "acc-1", m.AccessToken(ctx))
		assert.Equal(t, "ref-1", m.RefreshToken(ctx))
	})

	t.Run("AccessOnlyPairKeepsRefresh", func(t *testing.T) {
		// a refresh response carries a new access token only
		err := m.SaveTokens(ctx, &model.TokenPair{Access: "acc-2"})
		assert.NoError(t, err)
		assert.Equal(t, "acc-2", m.AccessToken(ctx))
		assert.Equal(t, "ref-1", m.RefreshToken(ctx))
	})

	t.Run("SetAccessToken", func(t *testing.T) {
		err := m.SetAccessToken(ctx, "acc-3")
		assert.NoError(t, err)
		assert.Equal(t, "acc-3", m.AccessToken(ctx))
	})
}

func TestUser(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	t.Run("NotLoggedIn", func(t *testing.T) {
		_, err := m.User(ctx)
		assert.ErrorIs(t, err, ErrNotLoggedIn)
	})

	t.Run("SaveAndLoad", func(t *testing.T) {
		err := m.SaveUser(ctx, &model.User{Id: 7, Username: "ansel", Email: "ansel@example.com"})
		assert.NoError(t, err)

		user, err := m.User(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), user.Id)
		assert.Equal(t, "ansel", user.Username)
	})
}

func TestClear(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	assert.NoError(t, m.SaveTokens(ctx, &model.TokenPair{Access: "acc-1", Refresh: "ref-1"}))
	assert.NoError(t, m.SaveUser(ctx, &model.User{Id: 7, Username: "ansel"}))

	assert.NoError(t, m.Clear(ctx))
	assert.Empty(t, m.AccessToken(ctx))
	assert.Empty(t, m.RefreshToken(ctx))
	_, err := m.User(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestAttach(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	t.Run("NoTokenIsNoOp", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "http://localhost/folders", nil)
		assert.NoError(t, err)
		m.Attach(ctx, req)
		assert.Empty(t, req.Header.Get("Authorization"))
	})

	t.Run("SetsBearerHeader", func(t *testing.T) {
		assert.NoError(t, m.SetAccessToken(ctx, "acc-1"))
		req, err := http.NewRequest(http.MethodGet, "http://localhost/folders", nil)
		assert.NoError(t, err)
		m.Attach(ctx, req)
		assert.Equal(t, "Bearer acc-1", req.Header.Get("Authorization"))
	})
}
