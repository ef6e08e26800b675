package gallery

import (
	"pholio/model"
	"sort"
	"strings"
)

// Read-only projections over current state. Deterministic for the same
// state and arguments; all of them return copies.

func (s *Store) Folders() []model.Folder {
	s.mu.Lock()
	defer s.mu.Unlock()
	folders := make([]model.Folder, len(s.folders))
	copy(folders, s.folders)
	return folders
}

func (s *Store) AllPhotos() []model.Photo {
	s.mu.Lock()
	defer s.mu.Unlock()
	photos := make([]model.Photo, len(s.allPhotos))
	copy(photos, s.allPhotos)
	return photos
}

// FavoritePhotos is always exactly the is_favorite subset of the flat
// photo collection, never an independently fetched resource.
func (s *Store) FavoritePhotos() []model.Photo {
	s.mu.Lock()
	defer s.mu.Unlock()
	var favorites []model.Photo
	for _, p := range s.allPhotos {
		if p.IsFavorite {
			favorites = append(favorites, p)
		}
	}
	return favorites
}

func (s *Store) PhotosByFolder(folderId int64) []model.Photo {
	s.mu.Lock()
	defer s.mu.Unlock()
	var photos []model.Photo
	for _, p := range s.allPhotos {
		if p.FolderId == folderId {
			photos = append(photos, p)
		}
	}
	return photos
}

// RecentPhotos returns at most limit photos, newest first. The sort is
// stable so photos sharing a timestamp keep their fetch order.
func (s *Store) RecentPhotos(limit int) []model.Photo {
	s.mu.Lock()
	photos := make([]model.Photo, len(s.allPhotos))
	copy(photos, s.allPhotos)
	s.mu.Unlock()

	sort.SliceStable(photos, func(i, j int) bool {
		return photos[i].CreatedAt.After(photos[j].CreatedAt)
	})
	if limit >= 0 && len(photos) > limit {
		photos = photos[:limit]
	}
	return photos
}

// SearchPhotos matches the query case-insensitively against title,
// description and folder name. An empty or whitespace query yields an
// empty result, not "all photos".
func (s *Store) SearchPhotos(query string) []model.Photo {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var matches []model.Photo
	for _, p := range s.allPhotos {
		if strings.Contains(strings.ToLower(p.Title), query) ||
			strings.Contains(strings.ToLower(p.Description), query) ||
			strings.Contains(strings.ToLower(p.FolderName), query) {
			matches = append(matches, p)
		}
	}
	return matches
}
