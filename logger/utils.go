package L

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"
)

func HumanReadableBytes(bytes uint64, precision int) string {
	if bytes == 0 {
		return "0 B"
	}
	if precision <= 0 {
		precision = 2
	}
	val := float64(bytes)
	suffixes := []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}
	unit := float64(1024)
	i := 0
	for val >= unit && i < len(suffixes)-1 {
		val /= unit
		i += 1
	}
	return fmt.Sprintf("%.*f%s", precision, val, suffixes[i])
}

func HttpResponseString(resp *http.Response) string {

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Sprintf("[%s] Status:%s\n\t\tContent: Cannot read response body %v",
			resp.Request.URL.String(),
			resp.Status, err)
	}

	var sb strings.Builder
	sb.WriteString("\n---Req---\n")
	sb.WriteString(fmt.Sprintf("URL:%s\n", resp.Request.URL))
	sb.WriteString("\n---Req. Headers---\n")
	for key, values := range resp.Request.Header {
		sb.WriteString(fmt.Sprintf("%s : ", key))
		for _, value := range values {
			sb.WriteString(value)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("Resp. Status: %d", resp.StatusCode))
	sb.WriteString("\n---Resp. Headers---\n")
	for key, values := range resp.Header {
		sb.WriteString(fmt.Sprintf("%s : ", key))
		for _, value := range values {
			sb.WriteString(value)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n---Resp. Body---\n")
	resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	sb.WriteString(string(bodyBytes))
	return sb.String()
}

func Line(width int) string {
	return strings.Repeat("-", width)
}

type TruncateMode int

const (
	TRUNC_RIGHT  TruncateMode = iota // Truncate from the right: ... at the end
	TRUNC_LEFT                       // Truncate from the left; ... at the beginning
	TRUNC_CENTER                     // Truncate from the center: ... in the middle
)

func TruncateString(input string, maxLen int, mode TruncateMode) string {
	ellipsis := "..."
	inputLen := utf8.RuneCountInString(input)
	ellipsisLen := utf8.RuneCountInString(ellipsis)

	if maxLen < 0 {
		return ""
	}
	if inputLen <= maxLen {
		return input
	}

	if maxLen < ellipsisLen {
		return string([]rune(ellipsis)[:maxLen])
	}

	runes := []rune(input) // Convert to slice of runes for easy indexing

	switch mode {
	case TRUNC_RIGHT:
		return string(runes[:maxLen-ellipsisLen]) + ellipsis

	case TRUNC_LEFT:
		return ellipsis + string(runes[inputLen-(maxLen-ellipsisLen):])

	case TRUNC_CENTER:
		halfLen := (maxLen - ellipsisLen) / 2
		leftPart := string(runes[:halfLen])
		rightPart := string(runes[inputLen-(maxLen-ellipsisLen-halfLen):])
		return leftPart + ellipsis + rightPart

	default:
		return string(runes[:maxLen-ellipsisLen]) + ellipsis
	}
}
