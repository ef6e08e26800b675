package model

import (
	"fmt"
	"time"
)

// Folder is a user-owned container for photos. Ids are assigned by the
// backend; the client never invents one.
type Folder struct {
	Id        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f *Folder) String() string {
	return fmt.Sprintf("[Folder]\n  Id: %d\n  Name: %s\n  CreatedAt: %s\n",
		f.Id,
		f.Name,
		f.CreatedAt.Format("2006-01-02 15:04:05"))
}
