package components

import (
	"fmt"
	L "pholio/logger"
	"pholio/model"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renders the flat photo table for whichever projection is active
func RenderPhotoList(
	photos []model.Photo,
	contentCursor int,
	contentOffset int,
	focusOnContent bool,
	width int,
	height int,
	showFolderColumn bool,
) string {
	var sb strings.Builder

	if len(photos) == 0 {
		return "\n\n  " + DimStyle.Render("Nothing to show here.")
	}

	maxVisible := max(height-12, 1)

	favWidth := 2
	sizeWidth := 10
	createdWidth := 16
	folderWidth := 0
	if showFolderColumn {
		folderWidth = 18
	}
	titleWidth := width - favWidth - sizeWidth - createdWidth - folderWidth - 5

	headerStyle := lipgloss.NewStyle().Foreground(ColorBlue).Bold(true)
	titleCol := lipgloss.NewStyle().Width(titleWidth)
	favCol := lipgloss.NewStyle().Width(favWidth)
	sizeCol := lipgloss.NewStyle().Width(sizeWidth)
	createdCol := lipgloss.NewStyle().Width(createdWidth)
	folderCol := lipgloss.NewStyle().Width(folderWidth)

	headerCells := []string{
		headerStyle.Width(titleWidth).Render("TITLE"),
		headerStyle.Width(favWidth).Render(""),
	}
	if showFolderColumn {
		headerCells = append(headerCells, headerStyle.Width(folderWidth).Render("FOLDER"))
	}
	headerCells = append(headerCells,
		headerStyle.Width(sizeWidth).Render("SIZE"),
		headerStyle.Width(createdWidth).Render("CREATED AT"),
	)
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, headerCells...) + "\n")

	end := contentOffset + maxVisible
	for i := contentOffset; i < len(photos) && i < end; i++ {
		p := photos[i]

		fav := " "
		if p.IsFavorite {
			fav = "♥"
		}
		size := ""
		if p.FileSize > 0 {
			size = L.HumanReadableBytes(uint64(p.FileSize), 1)
		}

		cells := []string{
			titleCol.Render(L.TruncateString(p.Title, titleWidth-1, L.TRUNC_RIGHT)),
			favCol.Render(fav),
		}
		if showFolderColumn {
			cells = append(cells, folderCol.Render(L.TruncateString(p.FolderName, folderWidth-1, L.TRUNC_RIGHT)))
		}
		cells = append(cells,
			sizeCol.Render(size),
			createdCol.Render(p.CreatedAt.Format("2006-01-02 15:04")),
		)
		line := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

		if i == contentCursor && focusOnContent {
			sb.WriteString(selectedItemStyle.Width(width - 2).Render(line))
		} else {
			sb.WriteString(line)
		}
		sb.WriteString("\n")
	}

	if len(photos) > end {
		sb.WriteString(DimStyle.Render(fmt.Sprintf("... %d more photos", len(photos)-end)))
	}

	return sb.String()
}
