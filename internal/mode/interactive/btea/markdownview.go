// ABOUTME: Markdown renderer wrapper around glamour for the help overlay
// ABOUTME: Caches rendered results keyed by content hash, width, and light/dark style

package btea

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// MarkdownRenderer wraps glamour to render markdown with caching.
type MarkdownRenderer struct {
	cache map[string]string // "hash:width:style" -> rendered
}

// NewMarkdownRenderer creates a MarkdownRenderer with an empty cache.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{
		cache: make(map[string]string),
	}
}

// Render returns the terminal-styled rendering of md. The glamour style
// follows the viewer theme rather than probing the terminal background.
func (r *MarkdownRenderer) Render(md string, width int, dark bool) string {
	if md == "" {
		return ""
	}

	style := styles.LightStyle
	if dark {
		style = styles.DarkStyle
	}

	key := cacheKey(md, width, style)
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}

	// Trim the blank margin glamour adds around the document
	rendered = strings.Trim(rendered, "\n")

	r.cache[key] = rendered
	return rendered
}

// cacheKey produces a string key from content hash, width, and style.
func cacheKey(content string, width int, style string) string {
	h := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x:%d:%s", h[:8], width, style)
}
