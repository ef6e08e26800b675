package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"pholio/database"
	dbmodel "pholio/database/model"
	"pholio/database/repository"
	L "pholio/logger"
	"pholio/model"
)

// ErrSessionExpired is returned once the refresh token itself has been
// rejected; both persisted tokens are cleared before it is surfaced.
var ErrSessionExpired error = errors.New("session expired, please login again")

var ErrNotLoggedIn error = errors.New("not logged in, see 'pholio help login'")

// Manager owns the persisted bearer token pair and the cached user
// profile. It never talks to the network; exchanging a refresh token for
// a new access token is the api client's job.
type Manager struct {
	repo repository.SessionRepository
}

func NewManager(repo repository.SessionRepository) *Manager {
	return &Manager{repo: repo}
}

func (m *Manager) AccessToken(ctx context.Context) string {
	token, err := m.repo.Get(ctx, dbmodel.KEY_ACCESS_TOKEN)
	if err != nil {
		if err != database.ErrDoesNotExist {
			L.Error(fmt.Sprintf("session: could not read access token: %v", err))
		}
		return ""
	}
	return token
}

func (m *Manager) RefreshToken(ctx context.Context) string {
	token, err := m.repo.Get(ctx, dbmodel.KEY_REFRESH_TOKEN)
	if err != nil {
		if err != database.ErrDoesNotExist {
			L.Error(fmt.Sprintf("session: could not read refresh token: %v", err))
		}
		return ""
	}
	return token
}

func (m *Manager) SaveTokens(ctx context.Context, pair *model.TokenPair) error {
	err := m.repo.Put(ctx, dbmodel.KEY_ACCESS_TOKEN, pair.Access)
	if err != nil {
		return fmt.Errorf("session: could not persist access token: %w", err)
	}
	if pair.Refresh != "" {
		err = m.repo.Put(ctx, dbmodel.KEY_REFRESH_TOKEN, pair.Refresh)
		if err != nil {
			return fmt.Errorf("session: could not persist refresh token: %w", err)
		}
	}
	return nil
}

func (m *Manager) SetAccessToken(ctx context.Context, token string) error {
	err := m.repo.Put(ctx, dbmodel.KEY_ACCESS_TOKEN, token)
	if err != nil {
		return fmt.Errorf("session: could not persist access token: %w", err)
	}
	return nil
}

func (m *Manager) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: could not encode user data: %w", err)
	}
	return m.repo.Put(ctx, dbmodel.KEY_USER_DATA, string(data))
}

func (m *Manager) User(ctx context.Context) (*model.User, error) {
	data, err := m.repo.Get(ctx, dbmodel.KEY_USER_DATA)
	if err != nil {
		if err == database.ErrDoesNotExist {
			return nil, ErrNotLoggedIn
		}
		return nil, err
	}
	var user model.User
	err = json.Unmarshal([]byte(data), &user)
	if err != nil {
		return nil, fmt.Errorf("session: malformed cached user data: %w", err)
	}
	return &user, nil
}

// Clear drops all persisted session state. Called on logout and on an
// irrecoverable refresh failure.
func (m *Manager) Clear(ctx context.Context) error {
	return m.repo.Delete(ctx,
		dbmodel.KEY_ACCESS_TOKEN,
		dbmodel.KEY_REFRESH_TOKEN,
		dbmodel.KEY_USER_DATA,
	)
}

// Attach adds the bearer header to req if an access token is persisted,
// and is a no-op otherwise.
func (m *Manager) Attach(ctx context.Context, req *http.Request) {
	token := m.AccessToken(ctx)
	if token == "" {
		return
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
}
