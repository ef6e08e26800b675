package tui

import (
	"fmt"
	"pholio/tui/components"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m modelTui) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	sidebarWidth := 30
	// account for both panels' borders (2+2)
	contentWidth := m.width - sidebarWidth - 4
	// account for borders (2 lines) and footer (1 line)
	mainHeight := m.height - 3

	sidebarContent := components.RenderFolderList(
		m.folders,
		m.folderCounts(),
		m.sidebarCursor,
		m.focus == focusSidebar,
		sidebarWidth,
	)

	sidebarTitle := "[1] Folders"
	sidebarBorderStyle := boxStyle
	sidebarTitleStyle := panelTitleStyle
	if m.focus == focusSidebar {
		sidebarBorderStyle = activeBoxStyle
		sidebarTitleStyle = activePanelTitleStyle
	}
	sidebarBox := renderBoxWithTitle(sidebarTitle, sidebarContent, sidebarWidth, mainHeight, sidebarBorderStyle, sidebarTitleStyle, true)

	var cb strings.Builder

	cb.WriteString(m.renderTabs() + "\n")

	photosContent := components.RenderPhotoList(
		m.photos,
		m.contentCursor,
		m.contentOffset,
		m.focus == focusContent,
		contentWidth,
		m.height,
		m.activeTab != tabPhotos,
	)
	cb.WriteString(photosContent)

	statusBar := components.RenderStatusBar(
		m.store.Loading(),
		m.store.Err(),
		m.flash,
		m.inputPrompt(),
		len(m.folders),
		len(m.store.AllPhotos()),
		contentWidth,
	)
	cb.WriteString("\n" + statusBar)

	contentTitle := "[2] Photos"
	contentBorderStyle := boxStyle
	contentTitleStyle := panelTitleStyle
	if m.focus == focusContent {
		contentBorderStyle = activeBoxStyle
		contentTitleStyle = activePanelTitleStyle
	}
	contentBox := renderBoxWithTitle(contentTitle, cb.String(), contentWidth, mainHeight, contentBorderStyle, contentTitleStyle, true)

	footer := components.HelpStyle.Width(m.width).Align(lipgloss.Center).Render("1:Folders | 2:Photos | Tab:Toggle | 3-5:Tabs | /:Search | n:New folder | f:Favorite | x:Delete | r:Refresh | q:Quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, sidebarBox, contentBox),
		footer,
	)
}

func (m modelTui) renderTabs() string {
	labels := []struct {
		tab  tabId
		name string
		key  string
	}{
		{tabPhotos, "Photos", "3"},
		{tabFavorites, "Favorites", "4"},
		{tabRecent, "Recent", "5"},
		{tabSearch, "Search", "/"},
	}

	var rendered []string
	for _, label := range labels {
		name := label.name
		if label.tab == tabSearch && m.searchQuery != "" {
			name = fmt.Sprintf("Search: %s", m.searchQuery)
		}
		if m.focus == focusContent {
			name = fmt.Sprintf("[%s] %s", label.key, name)
		}
		if m.focus == focusContent && m.activeTab == label.tab {
			rendered = append(rendered, activeTabStyle.Render(name))
		} else {
			rendered = append(rendered, tabStyle.Foreground(components.ColorGrey).Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m modelTui) folderCounts() map[int64]int {
	counts := map[int64]int{}
	for _, p := range m.store.AllPhotos() {
		counts[p.FolderId]++
	}
	return counts
}

func (m modelTui) inputPrompt() string {
	switch m.input {
	case inputSearch:
		return fmt.Sprintf("Search: %s_", m.inputBuffer)
	case inputNewFolder:
		return fmt.Sprintf("New folder name: %s_", m.inputBuffer)
	default:
		return ""
	}
}
