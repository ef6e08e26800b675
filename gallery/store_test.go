package gallery

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"pholio/model"

	"github.com/stretchr/testify/assert"
)

// fakeGateway serves canned folders and photos and records calls. Photo
// fetches can be failed or delayed per folder id.
type fakeGateway struct {
	mu sync.Mutex

	folders      []model.Folder
	photos       map[int64][]model.Photo
	failPhotos   map[int64]error
	photoDelay   map[int64]time.Duration
	setFavorite  []int64
	favoriteErr  error
	deletedPhoto []int64
	nextId       int64
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		photos:     make(map[int64][]model.Photo),
		failPhotos: make(map[int64]error),
		photoDelay: make(map[int64]time.Duration),
		nextId:     100,
	}
}

func (g *fakeGateway) addFolder(id int64, name string) {
	g.folders = append(g.folders, model.Folder{Id: id, Name: name, CreatedAt: time.Now()})
}

func (g *fakeGateway) addPhoto(folderId int64, id int64, title string, createdAt time.Time) {
	g.photos[folderId] = append(g.photos[folderId], model.Photo{
		Id:        id,
		Title:     title,
		CreatedAt: createdAt,
	})
}

func (g *fakeGateway) ListFolders(ctx context.Context) ([]model.Folder, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	folders := make([]model.Folder, len(g.folders))
	copy(folders, g.folders)
	return folders, nil
}

func (g *fakeGateway) CreateFolder(ctx context.Context, name string) (*model.Folder, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextId++
	folder := model.Folder{Id: g.nextId, Name: name, CreatedAt: time.Now()}
	g.folders = append(g.folders, folder)
	return &folder, nil
}

func (g *fakeGateway) DeleteFolder(ctx context.Context, folderId int64) error {
	return nil
}

func (g *fakeGateway) ListFolderPhotos(ctx context.Context, folderId int64) ([]model.Photo, error) {
	g.mu.Lock()
	err := g.failPhotos[folderId]
	delay := g.photoDelay[folderId]
	photos := make([]model.Photo, len(g.photos[folderId]))
	copy(photos, g.photos[folderId])
	g.mu.Unlock()
	if delay > 0 {
		time.Sleep(delay)
	}
	if err != nil {
		return nil, err
	}
	return photos, nil
}

func (g *fakeGateway) UploadPhoto(ctx context.Context, folderId int64, filename string, data []byte) (*model.Photo, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextId++
	photo := model.Photo{
		Id:        g.nextId,
		Title:     filename,
		FileSize:  int64(len(data)),
		CreatedAt: time.Now(),
	}
	g.photos[folderId] = append(g.photos[folderId], photo)
	return &photo, nil
}

func (g *fakeGateway) DeletePhoto(ctx context.Context, folderId int64, photoId int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.deletedPhoto = append(g.deletedPhoto, photoId)
	return nil
}

func (g *fakeGateway) SetFavorite(ctx context.Context, photoId int64, favorite bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.setFavorite = append(g.setFavorite, photoId)
	return g.favoriteErr
}

func setupStore(t *testing.T) (*Store, *fakeGateway) {
	gw := newFakeGateway()
	gw.addFolder(1, "Trip")
	gw.addFolder(2, "Pets")
	gw.addPhoto(1, 10, "beach", time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	gw.addPhoto(1, 11, "sunset over dunes", time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC))
	gw.addPhoto(2, 20, "cat", time.Date(2026, 1, 3, 12, 0, 0, 0, time.UTC))
	store := NewStore(gw)
	err := store.Refresh(context.Background())
	assert.NoError(t, err)
	return store, gw
}

func TestRefresh(t *testing.T) {
	t.Run("AnnotatesPhotosWithFolder", func(t *testing.T) {
		store, _ := setupStore(t)
		assert.Len(t, store.Folders(), 2)
		assert.Len(t, store.AllPhotos(), 3)
		for _, p := range store.PhotosByFolder(1) {
			assert.Equal(t, int64(1), p.FolderId)
			assert.Equal(t, "Trip", p.FolderName)
		}
		assert.False(t, store.Loading())
		assert.Empty(t, store.Err())
	})

	t.Run("FolderFetchFailureIsSkipped", func(t *testing.T) {
		store, gw := setupStore(t)
		gw.failPhotos[1] = fmt.Errorf("boom")
		err := store.Refresh(context.Background())
		assert.NoError(t, err)
		assert.Len(t, store.Folders(), 2)
		assert.Empty(t, store.PhotosByFolder(1))
		assert.Len(t, store.PhotosByFolder(2), 1)
		assert.Empty(t, store.Err())
	})

	t.Run("StaleResultIsDiscarded", func(t *testing.T) {
		store, gw := setupStore(t)

		// first refresh is slowed down so the second one finishes under it
		gw.photoDelay[1] = 100 * time.Millisecond
		done := make(chan struct{})
		go func() {
			defer close(done)
			_ = store.Refresh(context.Background())
		}()
		time.Sleep(20 * time.Millisecond)

		gw.mu.Lock()
		gw.photoDelay[1] = 0
		gw.folders = gw.folders[:1]
		delete(gw.photos, 2)
		gw.mu.Unlock()
		err := store.Refresh(context.Background())
		assert.NoError(t, err)
		<-done

		// the slow first refresh must not resurrect folder 2
		assert.Len(t, store.Folders(), 1)
		assert.Empty(t, store.PhotosByFolder(2))
	})
}

func TestCreateFolder(t *testing.T) {
	store, _ := setupStore(t)
	folder, err := store.CreateFolder(context.Background(), "Archive")
	assert.NoError(t, err)
	assert.NotNil(t, folder)
	assert.Len(t, store.Folders(), 3)
}

func TestDeleteFolderCascades(t *testing.T) {
	store, _ := setupStore(t)
	store.SetCurrentFolder(1)

	err := store.DeleteFolder(context.Background(), 1)
	assert.NoError(t, err)

	assert.Len(t, store.Folders(), 1)
	assert.Len(t, store.AllPhotos(), 1)
	assert.Empty(t, store.PhotosByFolder(1))
	assert.Nil(t, store.CurrentFolder())
}

func TestUploadPhoto(t *testing.T) {
	store, _ := setupStore(t)
	photo, err := store.UploadPhoto(context.Background(), 1, "dune.jpg", []byte("jpegdata"))
	assert.NoError(t, err)
	assert.Equal(t, int64(1), photo.FolderId)
	assert.Equal(t, "Trip", photo.FolderName)
	assert.Len(t, store.PhotosByFolder(1), 3)
}

func TestDeletePhoto(t *testing.T) {
	store, gw := setupStore(t)
	err := store.DeletePhoto(context.Background(), 1, 10)
	assert.NoError(t, err)
	assert.Len(t, store.AllPhotos(), 2)
	assert.Equal(t, []int64{10}, gw.deletedPhoto)
}

func TestToggleFavorite(t *testing.T) {
	t.Run("FlipsLocallyAndCallsBackend", func(t *testing.T) {
		store, gw := setupStore(t)
		store.ToggleFavorite(context.Background(), 10, true)
		favorites := store.FavoritePhotos()
		assert.Len(t, favorites, 1)
		assert.Equal(t, int64(10), favorites[0].Id)
		assert.Equal(t, []int64{10}, gw.setFavorite)

		store.ToggleFavorite(context.Background(), 10, false)
		assert.Empty(t, store.FavoritePhotos())
	})

	t.Run("BackendFailureStillFlipsLocally", func(t *testing.T) {
		store, gw := setupStore(t)
		gw.favoriteErr = fmt.Errorf("405 method not allowed")
		store.ToggleFavorite(context.Background(), 20, true)
		favorites := store.FavoritePhotos()
		assert.Len(t, favorites, 1)
		assert.Equal(t, int64(20), favorites[0].Id)
	})
}

func TestRecentPhotos(t *testing.T) {
	store, _ := setupStore(t)

	t.Run("NewestFirst", func(t *testing.T) {
		recent := store.RecentPhotos(10)
		assert.Len(t, recent, 3)
		assert.Equal(t, int64(20), recent[0].Id)
		assert.Equal(t, int64(11), recent[1].Id)
		assert.Equal(t, int64(10), recent[2].Id)
	})

	t.Run("LimitApplies", func(t *testing.T) {
		recent := store.RecentPhotos(2)
		assert.Len(t, recent, 2)
		assert.Equal(t, int64(20), recent[0].Id)
	})

	t.Run("StableForEqualTimestamps", func(t *testing.T) {
		gw := newFakeGateway()
		gw.addFolder(1, "Same")
		at := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		gw.addPhoto(1, 1, "first", at)
		gw.addPhoto(1, 2, "second", at)
		gw.addPhoto(1, 3, "third", at)
		s := NewStore(gw)
		assert.NoError(t, s.Refresh(context.Background()))

		recent := s.RecentPhotos(10)
		assert.Equal(t, []int64{1, 2, 3}, []int64{recent[0].Id, recent[1].Id, recent[2].Id})
	})
}

func TestSearchPhotos(t *testing.T) {
	store, _ := setupStore(t)

	t.Run("EmptyQueryMatchesNothing", func(t *testing.T) {
		assert.Empty(t, store.SearchPhotos(""))
		assert.Empty(t, store.SearchPhotos("   "))
	})

	t.Run("CaseInsensitiveTitleMatch", func(t *testing.T) {
		matches := store.SearchPhotos("SUNSET")
		assert.Len(t, matches, 1)
		assert.Equal(t, int64(11), matches[0].Id)
	})

	t.Run("FolderNameMatch", func(t *testing.T) {
		matches := store.SearchPhotos("trip")
		assert.Len(t, matches, 2)
	})

	t.Run("NoMatch", func(t *testing.T) {
		assert.Empty(t, store.SearchPhotos("zebra"))
	})
}
