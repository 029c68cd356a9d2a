package ui

import (
	"bytes"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// HighlightJSON applies JSON syntax highlighting using the named chroma style.
// Text that cannot be tokenised is returned unchanged; broken JSON still
// highlights, with the bad tokens left plain.
func HighlightJSON(code, style string) string {
	if code == "" {
		return code
	}

	lexer := lexers.Get("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	s := styles.Get(style)
	if s == nil {
		s = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, s, iterator); err != nil {
		return code
	}
	return buf.String()
}

// highlightCache remembers the last highlighted text so repeated renders of
// an unchanged pane skip the lexer.
type highlightCache struct {
	src, style, out string
}

func (c *highlightCache) get(src, style string) string {
	if src != c.src || style != c.style || c.out == "" {
		c.src, c.style = src, style
		c.out = HighlightJSON(src, style)
	}
	return c.out
}
