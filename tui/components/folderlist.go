package components

import (
	"fmt"
	L "pholio/logger"
	"pholio/model"
	"strings"
)

func RenderFolderList(
	folders []model.Folder,
	photoCounts map[int64]int,
	sidebarCursor int,
	focusOnSidebar bool,
	width int,
) string {
	var sb strings.Builder

	// align with tabs on the content side (1 line to match tab position)
	sb.WriteString("\n")

	if len(folders) == 0 {
		sb.WriteString(DimStyle.Render("No folders yet.") + "\n")
		sb.WriteString(DimStyle.Render("Press 'n' to create one.") + "\n")
		return sb.String()
	}

	for i, folder := range folders {
		name := L.TruncateString(folder.Name, width-10, L.TRUNC_RIGHT)
		msg := fmt.Sprintf("%s\n• %d photos", name, photoCounts[folder.Id])

		style := sidebarItemStyle

		if i == sidebarCursor {
			if focusOnSidebar {
				style = selectedItemStyle
			} else {
				style = sidebarItemStyle.Background(ColorGrey)
			}
		}

		// width accounts for borders (2) only, padding is handled by box style
		sb.WriteString(style.Width(width-2).Render(msg) + "\n")
	}

	return sb.String()
}
