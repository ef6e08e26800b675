package tui

import (
	"context"
	"pholio/gallery"
	"pholio/model"
	"pholio/validate"

	tea "github.com/charmbracelet/bubbletea"
)

type focusArea int

const (
	focusSidebar focusArea = iota
	focusContent
)

type tabId int

const (
	tabPhotos tabId = iota
	tabFavorites
	tabRecent
	tabSearch
)

type inputMode int

const (
	inputNone inputMode = iota
	inputSearch
	inputNewFolder
)

const recentLimit = 20

type storeUpdatedMsg struct{}

type modelTui struct {
	ctx           context.Context
	store         *gallery.Store
	folders       []model.Folder
	photos        []model.Photo
	sidebarCursor int
	contentCursor int
	contentOffset int
	focus         focusArea
	activeTab     tabId
	input         inputMode
	inputBuffer   string
	searchQuery   string
	flash         string
	width         int
	height        int
}

func NewApp(ctx context.Context, store *gallery.Store) *modelTui {
	return &modelTui{
		ctx:       ctx,
		store:     store,
		focus:     focusSidebar,
		activeTab: tabPhotos,
	}
}

func (m modelTui) Init() tea.Cmd {
	return m.refresh
}

func (m modelTui) refresh() tea.Msg {
	// errors land in the store's error state, shown by the status bar
	_ = m.store.Refresh(m.ctx)
	return storeUpdatedMsg{}
}

func (m modelTui) createFolder(name string) tea.Cmd {
	return func() tea.Msg {
		_, _ = m.store.CreateFolder(m.ctx, name)
		return storeUpdatedMsg{}
	}
}

func (m modelTui) deleteFolder(folderId int64) tea.Cmd {
	return func() tea.Msg {
		_ = m.store.DeleteFolder(m.ctx, folderId)
		return storeUpdatedMsg{}
	}
}

func (m modelTui) deletePhoto(folderId int64, photoId int64) tea.Cmd {
	return func() tea.Msg {
		_ = m.store.DeletePhoto(m.ctx, folderId, photoId)
		return storeUpdatedMsg{}
	}
}

func (m modelTui) toggleFavorite(photoId int64, favorite bool) tea.Cmd {
	return func() tea.Msg {
		m.store.ToggleFavorite(m.ctx, photoId, favorite)
		return storeUpdatedMsg{}
	}
}

func (m *modelTui) selectedFolder() *model.Folder {
	if m.sidebarCursor < 0 || m.sidebarCursor >= len(m.folders) {
		return nil
	}
	return &m.folders[m.sidebarCursor]
}

func (m *modelTui) selectedPhoto() *model.Photo {
	if m.contentCursor < 0 || m.contentCursor >= len(m.photos) {
		return nil
	}
	return &m.photos[m.contentCursor]
}

// reload pulls the projection for the active tab out of the store
func (m *modelTui) reload() {
	m.folders = m.store.Folders()
	if m.sidebarCursor >= len(m.folders) && m.sidebarCursor > 0 {
		m.sidebarCursor = len(m.folders) - 1
	}
	switch m.activeTab {
	case tabPhotos:
		if folder := m.selectedFolder(); folder != nil {
			m.store.SetCurrentFolder(folder.Id)
			m.photos = m.store.PhotosByFolder(folder.Id)
		} else {
			m.photos = nil
		}
	case tabFavorites:
		m.photos = m.store.FavoritePhotos()
	case tabRecent:
		m.photos = m.store.RecentPhotos(recentLimit)
	case tabSearch:
		m.photos = m.store.SearchPhotos(m.searchQuery)
	}
	if m.contentCursor >= len(m.photos) {
		m.contentCursor = max(len(m.photos)-1, 0)
	}
	if m.contentOffset > m.contentCursor {
		m.contentOffset = m.contentCursor
	}
}

func (m *modelTui) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.input = inputNone
		m.inputBuffer = ""

	case "enter":
		entered := m.inputBuffer
		mode := m.input
		m.input = inputNone
		m.inputBuffer = ""
		if mode == inputSearch {
			m.searchQuery = entered
			m.activeTab = tabSearch
			m.focus = focusContent
			m.contentCursor = 0
			m.contentOffset = 0
			m.reload()
		} else if mode == inputNewFolder {
			if err := validate.FolderName(entered); err != nil {
				m.flash = err.Error()
				return m, nil
			}
			return m, m.createFolder(entered)
		}

	case "backspace":
		if len(m.inputBuffer) > 0 {
			runes := []rune(m.inputBuffer)
			m.inputBuffer = string(runes[:len(runes)-1])
		}

	default:
		if msg.Type == tea.KeyRunes {
			m.inputBuffer += string(msg.Runes)
		} else if msg.Type == tea.KeySpace {
			m.inputBuffer += " "
		}
	}
	return m, nil
}

func (m *modelTui) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case storeUpdatedMsg:
		m.reload()

	case tea.KeyMsg:
		m.flash = ""
		if m.input != inputNone {
			return m.handleInputKey(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "1":
			m.focus = focusSidebar

		case "2":
			m.focus = focusContent

		case "tab":
			if m.focus == focusSidebar {
				m.focus = focusContent
			} else {
				m.focus = focusSidebar
			}

		case "3", "p":
			if m.focus == focusContent {
				m.activeTab = tabPhotos
				m.contentCursor = 0
				m.contentOffset = 0
				m.reload()
			}

		case "4", "v":
			if m.focus == focusContent {
				m.activeTab = tabFavorites
				m.contentCursor = 0
				m.contentOffset = 0
				m.reload()
			}

		case "5", "c":
			if m.focus == focusContent {
				m.activeTab = tabRecent
				m.contentCursor = 0
				m.contentOffset = 0
				m.reload()
			}

		case "/":
			m.input = inputSearch
			m.inputBuffer = ""

		case "n":
			m.input = inputNewFolder
			m.inputBuffer = ""

		case "r":
			return m, m.refresh

		case "f":
			if m.focus == focusContent {
				if photo := m.selectedPhoto(); photo != nil {
					return m, m.toggleFavorite(photo.Id, !photo.IsFavorite)
				}
			}

		case "x":
			if m.focus == focusContent {
				if photo := m.selectedPhoto(); photo != nil {
					return m, m.deletePhoto(photo.FolderId, photo.Id)
				}
			} else if m.focus == focusSidebar {
				if folder := m.selectedFolder(); folder != nil {
					return m, m.deleteFolder(folder.Id)
				}
			}

		case "up", "k":
			if m.focus == focusSidebar {
				if m.sidebarCursor > 0 {
					m.sidebarCursor--
					m.contentCursor = 0
					m.contentOffset = 0
					m.reload()
				}
			} else {
				if m.contentCursor > 0 {
					m.contentCursor--
					if m.contentCursor < m.contentOffset {
						m.contentOffset = m.contentCursor
					}
				}
			}

		case "down", "j":
			if m.focus == focusSidebar {
				if m.sidebarCursor < len(m.folders)-1 {
					m.sidebarCursor++
					m.contentCursor = 0
					m.contentOffset = 0
					m.reload()
				}
			} else {
				if m.contentCursor < len(m.photos)-1 {
					m.contentCursor++
					// handwaving space for the photo list
					maxVisible := m.height - 12
					if m.contentCursor >= m.contentOffset+maxVisible {
						m.contentOffset = m.contentCursor - maxVisible + 1
					}
				}
			}

		case "enter", "l", "right":
			if m.focus == focusSidebar {
				m.focus = focusContent
				m.activeTab = tabPhotos
				m.contentCursor = 0
				m.contentOffset = 0
				m.reload()
			}

		case "esc", "h", "left":
			if m.focus == focusContent {
				m.focus = focusSidebar
			}
		}
	}

	return m, nil
}
