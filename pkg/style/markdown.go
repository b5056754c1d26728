package style

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown for the terminal with glamour
type MarkdownRenderer struct {
	Style string // Style name: "dark", "light", "notty", "auto", or path to custom style
	Width int    // Word wrap width (0 = glamour default)
}

// NewMarkdownRenderer creates a markdown renderer with style auto-detection
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{Style: "auto"}
}

// Render converts markdown to styled terminal output, returning content
// unchanged if glamour fails
func (r *MarkdownRenderer) Render(content string) string {
	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// Markdown renders content with glamour when rich is set and returns it
// unchanged otherwise
func Markdown(content string, rich bool) string {
	if !rich {
		return content
	}
	return NewMarkdownRenderer().Render(content)
}
