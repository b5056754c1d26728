package style

import (
	"strings"

	"github.com/arthur-debert/wifiprof/pkg/render"
)

// KeyValues renders fields one per line with keys padded to a common
// width. Rich output colors keys and values.
func KeyValues(fields []render.Field, rich bool) string {
	width := 0
	for _, f := range fields {
		if len(f.Key) > width {
			width = len(f.Key)
		}
	}

	var b strings.Builder
	for _, f := range fields {
		key := f.Key + ":" + strings.Repeat(" ", width-len(f.Key))
		value := f.Value
		if rich {
			key = MutedStyle.Render(key)
			value = NormalStyle.Render(value)
		}
		b.WriteString(key + " " + value + "\n")
	}
	return b.String()
}

// MarkdownTable renders fields as a two column markdown table
func MarkdownTable(title string, fields []render.Field) string {
	var b strings.Builder
	if title != "" {
		b.WriteString("# " + title + "\n\n")
	}
	b.WriteString("| Field | Value |\n|---|---|\n")
	for _, f := range fields {
		b.WriteString("| " + escapeCell(f.Key) + " | " + escapeCell(f.Value) + " |\n")
	}
	return b.String()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
