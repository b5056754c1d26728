package topics

import (
	"github.com/arthur-debert/wifiprof/pkg/style"
)

// Renderer defines the interface for rendering topic content
type Renderer interface {
	// Render takes raw content and its file extension and returns
	// formatted content for terminal display
	Render(content string, ext string) string
}

// PlainRenderer is the default renderer that returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, ext string) string {
	return content
}

// MarkdownRenderer styles .md topics with glamour and leaves other
// formats untouched
type MarkdownRenderer struct {
	Markdown *style.MarkdownRenderer
}

// NewMarkdownRenderer creates a renderer with glamour style auto-detection
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{Markdown: style.NewMarkdownRenderer()}
}

// Render converts markdown topics to styled terminal output
func (r *MarkdownRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}
	return r.Markdown.Render(content)
}
