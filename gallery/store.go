package gallery

import (
	"context"
	"fmt"
	L "pholio/logger"
	"pholio/model"
	"sync"
)

// Gateway is the slice of the REST surface the store drives. *api.Client
// satisfies it; tests substitute fakes.
type Gateway interface {
	ListFolders(ctx context.Context) ([]model.Folder, error)
	CreateFolder(ctx context.Context, name string) (*model.Folder, error)
	DeleteFolder(ctx context.Context, folderId int64) error
	ListFolderPhotos(ctx context.Context, folderId int64) ([]model.Photo, error)
	UploadPhoto(ctx context.Context, folderId int64, filename string, data []byte) (*model.Photo, error)
	DeletePhoto(ctx context.Context, folderId int64, photoId int64) error
	SetFavorite(ctx context.Context, photoId int64, favorite bool) error
}

// Store is the in-memory authoritative view of "my folders and my
// photos". It is constructed per session and torn down on logout; nothing
// in here is a package-level singleton.
//
// All state lives behind one mutex. Mutations happen from whichever
// goroutine ran the command (the TUI runs commands off the update loop),
// so reads hand out copies, never the backing slices.
type Store struct {
	gateway Gateway

	mu         sync.Mutex
	folders    []model.Folder
	allPhotos  []model.Photo
	currentId  int64
	loading    bool
	lastErr    string
	generation int64
}

func NewStore(gateway Gateway) *Store {
	return &Store{gateway: gateway}
}

// Refresh rebuilds the folder list and the flat photo collection. Folder
// photo fetches fan out concurrently; a folder whose fetch fails is
// logged and skipped so one bad folder cannot abort the batch. Only the
// folder-list fetch itself is fatal.
//
// Each call bumps a generation counter; a refresh that finishes after a
// newer one has started discards its result instead of clobbering state.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	generation := s.generation
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()

	folders, err := s.gateway.ListFolders(ctx)
	if err != nil {
		s.finishRefresh(generation, nil, nil, err)
		return err
	}

	photosPerFolder := make([][]model.Photo, len(folders))
	var wg sync.WaitGroup
	for i := range folders {
		wg.Add(1)
		go func(i int, folder model.Folder) {
			defer wg.Done()
			photos, err := s.gateway.ListFolderPhotos(ctx, folder.Id)
			if err != nil {
				// deliberate partial-failure tolerance
				L.Error(fmt.Sprintf("gallery: could not fetch photos for folder %d (%s): %v", folder.Id, folder.Name, err))
				return
			}
			for j := range photos {
				photos[j].FolderId = folder.Id
				photos[j].FolderName = folder.Name
			}
			photosPerFolder[i] = photos
		}(i, folders[i])
	}
	wg.Wait()

	var allPhotos []model.Photo
	for _, photos := range photosPerFolder {
		allPhotos = append(allPhotos, photos...)
	}
	s.finishRefresh(generation, folders, allPhotos, nil)
	return nil
}

func (s *Store) finishRefresh(generation int64, folders []model.Folder, photos []model.Photo, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		L.Debug(fmt.Sprintf("gallery: discarding stale refresh result (generation %d, current %d)", generation, s.generation))
		return
	}
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		return
	}
	s.folders = folders
	s.allPhotos = photos
}

func (s *Store) CreateFolder(ctx context.Context, name string) (*model.Folder, error) {
	folder, err := s.gateway.CreateFolder(ctx, name)
	if err != nil {
		s.setErr(err)
		return nil, err
	}
	s.mu.Lock()
	s.folders = append(s.folders, *folder)
	s.mu.Unlock()
	return folder, nil
}

// DeleteFolder removes the folder and, mirroring the server-side cascade,
// every photo that belonged to it.
func (s *Store) DeleteFolder(ctx context.Context, folderId int64) error {
	err := s.gateway.DeleteFolder(ctx, folderId)
	if err != nil {
		s.setErr(err)
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	folders := s.folders[:0]
	for _, f := range s.folders {
		if f.Id != folderId {
			folders = append(folders, f)
		}
	}
	s.folders = folders
	photos := s.allPhotos[:0]
	for _, p := range s.allPhotos {
		if p.FolderId != folderId {
			photos = append(photos, p)
		}
	}
	s.allPhotos = photos
	if s.currentId == folderId {
		s.currentId = 0
	}
	return nil
}

func (s *Store) UploadPhoto(ctx context.Context, folderId int64, filename string, data []byte) (*model.Photo, error) {
	photo, err := s.gateway.UploadPhoto(ctx, folderId, filename, data)
	if err != nil {
		s.setErr(err)
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	photo.FolderId = folderId
	for _, f := range s.folders {
		if f.Id == folderId {
			photo.FolderName = f.Name
			break
		}
	}
	s.allPhotos = append(s.allPhotos, *photo)
	return photo, nil
}

func (s *Store) DeletePhoto(ctx context.Context, folderId int64, photoId int64) error {
	err := s.gateway.DeletePhoto(ctx, folderId, photoId)
	if err != nil {
		s.setErr(err)
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	photos := s.allPhotos[:0]
	for _, p := range s.allPhotos {
		if p.Id != photoId {
			photos = append(photos, p)
		}
	}
	s.allPhotos = photos
	return nil
}

// ToggleFavorite is fire-and-forget: the local flag flips immediately and
// unconditionally, and the backend PATCH is attempted best-effort (the
// endpoint is not guaranteed to exist on every deployment). The flag is
// session-lifetime state and is rebuilt from the backend on the next
// Refresh.
func (s *Store) ToggleFavorite(ctx context.Context, photoId int64, favorite bool) {
	s.mu.Lock()
	for i := range s.allPhotos {
		if s.allPhotos[i].Id == photoId {
			s.allPhotos[i].IsFavorite = favorite
			break
		}
	}
	s.mu.Unlock()

	err := s.gateway.SetFavorite(ctx, photoId, favorite)
	if err != nil {
		L.Debug(fmt.Sprintf("gallery: favorite flag not persisted for photo %d: %v", photoId, err))
	}
}

func (s *Store) SetCurrentFolder(folderId int64) {
	s.mu.Lock()
	s.currentId = folderId
	s.mu.Unlock()
}

func (s *Store) CurrentFolder() *model.Folder {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.folders {
		if f.Id == s.currentId {
			folder := f
			return &folder
		}
	}
	return nil
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the latest surfaced error message, for transient display.
// It never interrupts control flow.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Store) ClearErr() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *Store) setErr(err error) {
	s.mu.Lock()
	s.lastErr = err.Error()
	s.mu.Unlock()
}
