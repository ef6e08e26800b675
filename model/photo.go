package model

import (
	"fmt"
	L "pholio/logger"
	"time"
)

// Photo belongs to exactly one folder. FolderId and FolderName are
// denormalized annotations stamped by the gallery store at fetch time;
// FolderName may go stale if the folder is ever renamed server-side.
type Photo struct {
	Id          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image"`
	IsFavorite  bool      `json:"is_favorite"`
	FileSize    int64     `json:"file_size,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	FolderId    int64     `json:"folder"`
	FolderName  string    `json:"folder_name"`
}

func (p *Photo) String() string {
	return fmt.Sprintf("[Photo]\n  Id: %d\n  Title: %s\n  Folder: %s (%d)\n  Size: %s\n  Favorite: %t\n",
		p.Id,
		p.Title,
		p.FolderName,
		p.FolderId,
		L.HumanReadableBytes(uint64(p.FileSize), 1),
		p.IsFavorite)
}
