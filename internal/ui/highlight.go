package ui

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// noSyntaxStyle disables token colors for the expanded block.
const noSyntaxStyle = "none"

// highlightJSON colors a pretty-printed JSON block line by line. Tokens the
// syntax style leaves uncolored use base. The result always has one entry
// per line of block.
func highlightJSON(block, styleName string, base lipgloss.Style) []string {
	lines := strings.Split(block, "\n")
	plain := func() []string {
		out := make([]string, len(lines))
		for i, line := range lines {
			out[i] = base.Render(line)
		}
		return out
	}

	styleName = strings.TrimSpace(styleName)
	if styleName == "" || styleName == noSyntaxStyle {
		return plain()
	}
	style := styles.Get(styleName)
	lexer := lexers.Get("json")
	if style == nil || lexer == nil {
		return plain()
	}

	tokens, err := chroma.Tokenise(chroma.Coalesce(lexer), nil, block)
	if err != nil {
		return plain()
	}

	textColour := style.Get(chroma.Text).Colour
	out := make([]string, 0, len(lines))
	var cur strings.Builder
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		ts := tokenStyle(style.Get(tok.Type), textColour, base)
		for i, part := range strings.Split(tok.Value, "\n") {
			if i > 0 {
				out = append(out, cur.String())
				cur.Reset()
			}
			if part != "" {
				cur.WriteString(ts.Render(part))
			}
		}
	}
	out = append(out, cur.String())

	// Lexers may append a trailing newline to their input
	if len(out) < len(lines) {
		return plain()
	}
	return out[:len(lines)]
}

// tokenStyle turns a chroma style entry into a lipgloss style layered on base.
func tokenStyle(entry chroma.StyleEntry, textColour chroma.Colour, base lipgloss.Style) lipgloss.Style {
	ts := base
	if entry.Colour.IsSet() && entry.Colour != textColour {
		ts = ts.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		ts = ts.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		ts = ts.Italic(true)
	}
	return ts
}
