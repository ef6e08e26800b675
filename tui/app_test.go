package tui

import (
	"context"
	"sync/atomic"
	"testing"

	"pholio/gallery"
	"pholio/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

// countingGateway records how many calls reach the backend.
type countingGateway struct {
	calls atomic.Int64
}

func (g *countingGateway) ListFolders(ctx context.Context) ([]model.Folder, error) {
	g.calls.Add(1)
	return nil, nil
}

func (g *countingGateway) CreateFolder(ctx context.Context, name string) (*model.Folder, error) {
	g.calls.Add(1)
	return &model.Folder{Id: 1, Name: name}, nil
}

func (g *countingGateway) DeleteFolder(ctx context.Context, folderId int64) error {
	g.calls.Add(1)
	return nil
}

func (g *countingGateway) ListFolderPhotos(ctx context.Context, folderId int64) ([]model.Photo, error) {
	g.calls.Add(1)
	return nil, nil
}

func (g *countingGateway) UploadPhoto(ctx context.Context, folderId int64, filename string, data []byte) (*model.Photo, error) {
	g.calls.Add(1)
	return &model.Photo{}, nil
}

func (g *countingGateway) DeletePhoto(ctx context.Context, folderId int64, photoId int64) error {
	g.calls.Add(1)
	return nil
}

func (g *countingGateway) SetFavorite(ctx context.Context, photoId int64, favorite bool) error {
	g.calls.Add(1)
	return nil
}

func typeString(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.(*modelTui).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestNewFolderInput(t *testing.T) {
	t.Run("InvalidNameNeverReachesGateway", func(t *testing.T) {
		gw := &countingGateway{}
		app := NewApp(context.Background(), gallery.NewStore(gw))

		m, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
		m = typeString(m, "bad/name!")
		m, cmd := m.(*modelTui).Update(tea.KeyMsg{Type: tea.KeyEnter})

		assert.Nil(t, cmd)
		assert.NotEmpty(t, m.(*modelTui).flash)
		assert.Equal(t, int64(0), gw.calls.Load())
	})

	t.Run("ValidNameProducesCreateCmd", func(t *testing.T) {
		gw := &countingGateway{}
		app := NewApp(context.Background(), gallery.NewStore(gw))

		m, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
		m = typeString(m, "Summer Trip")
		m, cmd := m.(*modelTui).Update(tea.KeyMsg{Type: tea.KeyEnter})

		assert.NotNil(t, cmd)
		assert.Empty(t, m.(*modelTui).flash)

		msg := cmd()
		assert.IsType(t, storeUpdatedMsg{}, msg)
		assert.Equal(t, int64(1), gw.calls.Load())
	})

	t.Run("EscCancelsInput", func(t *testing.T) {
		gw := &countingGateway{}
		app := NewApp(context.Background(), gallery.NewStore(gw))

		m, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
		m = typeString(m, "half-typed")
		m, _ = m.(*modelTui).Update(tea.KeyMsg{Type: tea.KeyEsc})

		tm := m.(*modelTui)
		assert.Equal(t, inputNone, tm.input)
		assert.Empty(t, tm.inputBuffer)
	})
}

func TestSearchInput(t *testing.T) {
	gw := &countingGateway{}
	app := NewApp(context.Background(), gallery.NewStore(gw))

	m, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	m = typeString(m, "sunset")
	m, _ = m.(*modelTui).Update(tea.KeyMsg{Type: tea.KeyEnter})

	tm := m.(*modelTui)
	assert.Equal(t, tabSearch, tm.activeTab)
	assert.Equal(t, focusContent, tm.focus)
	assert.Equal(t, "sunset", tm.searchQuery)
}
