package site

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// Highlighter renders code samples to syntax-highlighted HTML. Results are
// cached by language and source.
type Highlighter struct {
	md    goldmark.Markdown
	mu    sync.Mutex
	cache map[string]template.HTML
}

// NewHighlighter creates a Highlighter using the given chroma style.
func NewHighlighter(style string) *Highlighter {
	return &Highlighter{
		md: goldmark.New(
			goldmark.WithExtensions(
				highlighting.NewHighlighting(
					highlighting.WithStyle(style),
				),
			),
		),
		cache: make(map[string]template.HTML),
	}
}

// Highlight returns code as a highlighted <pre> block.
func (h *Highlighter) Highlight(lang, code string) (template.HTML, error) {
	key := lang + "\x00" + code

	h.mu.Lock()
	if out, ok := h.cache[key]; ok {
		h.mu.Unlock()
		return out, nil
	}
	h.mu.Unlock()

	var buf bytes.Buffer
	if err := h.md.Convert([]byte(fence(lang, code)), &buf); err != nil {
		return "", fmt.Errorf("highlighting %s sample: %w", lang, err)
	}
	out := template.HTML(buf.String())

	h.mu.Lock()
	h.cache[key] = out
	h.mu.Unlock()
	return out, nil
}

// fence wraps code in a fenced block longer than any backtick run inside it.
func fence(lang, code string) string {
	n := 3
	for strings.Contains(code, strings.Repeat("`", n)) {
		n++
	}
	marker := strings.Repeat("`", n)
	return marker + lang + "\n" + strings.TrimRight(code, "\n") + "\n" + marker + "\n"
}
