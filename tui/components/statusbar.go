package components

import (
	"fmt"
	L "pholio/logger"
	"strings"
)

func RenderStatusBar(
	loading bool,
	storeErr string,
	flash string,
	inputPrompt string,
	folderCount int,
	photoCount int,
	width int,
) string {
	var sb strings.Builder

	switch {
	case inputPrompt != "":
		sb.WriteString(YellowStyle.Render(inputPrompt))

	case storeErr != "":
		sb.WriteString(RedStyle.Render("Error | " + L.TruncateString(storeErr, width-10, L.TRUNC_RIGHT)))

	case flash != "":
		sb.WriteString(YellowStyle.Render(L.TruncateString(flash, width-2, L.TRUNC_RIGHT)))

	case loading:
		sb.WriteString(DimStyle.Render("Status | REFRESHING..."))

	default:
		sb.WriteString(GreenStyle.Render(fmt.Sprintf("Status | %d folders, %d photos", folderCount, photoCount)))
	}

	return sb.String()
}
