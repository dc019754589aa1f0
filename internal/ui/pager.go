package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/smartpager/internal/jsonline"
	"github.com/five82/smartpager/internal/viewport"
)

const (
	currentMarker  = "► "
	invalidMarker  = "⚠ "
	expandIndent   = "    "
	emptyDocument  = "No lines"
	boxHorizontals = 4 // two border columns and one column of padding per side
)

// renderMain renders header, content box and status line.
func (m Model) renderMain() string {
	content := m.pager.VisibleContent()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderContent(content))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	name := truncateMiddle(m.fileName, maxInt(1, m.width-len(" Smart Pager - ")-1))
	title := bg.Join([]string{
		bg.Render(" Smart Pager", styles.Header),
		bg.Render(name, styles.AccentText.Bold(true)),
	}, " - ")
	return bg.FillLine(title, m.width)
}

// renderContent draws the bordered box holding the visible lines and the
// expansion block, always exactly viewport-height rows tall.
func (m Model) renderContent(content viewport.Content) string {
	styles := m.theme.Styles()
	width := m.contentWidth()
	height := m.pager.Height()

	lines := make([]string, 0, height)
	if len(content.Rows) == 0 {
		lines = append(lines, styles.MutedText.Render(truncateWidth(emptyDocument, width)))
	}
	for _, row := range content.Rows {
		lines = append(lines, m.renderRow(row, width))
		if row.Current && len(content.Expansion) > 0 {
			lines = append(lines, m.renderExpansion(content.Expansion, width)...)
		}
	}

	// An expansion near the bottom runs past the box and is clipped
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}

	return styles.Box.Width(width + 2).Render(strings.Join(lines, "\n"))
}

// renderRow draws one document line behind its marker column.
func (m Model) renderRow(row viewport.Row, width int) string {
	styles := m.theme.Styles()

	marker := "  "
	if row.Current {
		marker = styles.Marker.Render(currentMarker)
	}
	avail := maxInt(0, width-2)

	text := styles.MutedText
	if row.Current {
		text = styles.Text
	}

	switch row.Line.Kind {
	case jsonline.ValidJSON:
		parts := fitSegments(avail,
			expandTabs(row.Line.Prefix),
			expandTabs(row.Line.Raw),
			expandTabs(row.Line.Suffix),
		)
		return marker +
			renderNonEmpty(parts[0], text.Render) +
			renderNonEmpty(parts[1], styles.JSON.Render) +
			renderNonEmpty(parts[2], text.Render)

	case jsonline.InvalidJSONLike:
		body := truncateWidth(expandTabs(m.pager.Line(row.Index)), maxInt(0, avail-2))
		return marker + styles.InvalidMarker.Render(truncateWidth(invalidMarker, avail)) + renderNonEmpty(body, styles.Invalid.Render)

	default:
		body := truncateWidth(expandTabs(m.pager.Line(row.Index)), avail)
		return marker + renderNonEmpty(body, text.Render)
	}
}

// renderExpansion indents and highlights the pretty-printed block.
func (m Model) renderExpansion(block []string, width int) []string {
	styles := m.theme.Styles()
	highlighted := highlightJSON(strings.Join(block, "\n"), m.config.SyntaxStyle, styles.Expansion)

	out := make([]string, len(highlighted))
	for i, line := range highlighted {
		out[i] = ansi.Truncate(expandIndent+line, width, "")
	}
	return out
}

// renderStatus draws the position, the hint for the current line and the
// short key help.
func (m Model) renderStatus() string {
	styles := m.theme.Styles()
	sum := m.pager.StatusSummary()

	parts := []string{styles.FaintText.Render(fmt.Sprintf("Line %d/%d", sum.Position, sum.Total))}
	if hint := statusHint(sum); hint != "" {
		style := styles.InfoText
		switch {
		case sum.Kind == jsonline.InvalidJSONLike:
			style = styles.DangerText
		case sum.Expanded:
			style = styles.SuccessText
		}
		parts = append(parts, style.Render(hint))
	}
	if m.pendingG {
		parts = append(parts, styles.WarningText.Render("g"))
	}
	parts = append(parts, m.help.ShortHelpView(m.keys.ShortHelp()))

	return ansi.Truncate(strings.Join(parts, "  "), m.width, "")
}

// statusHint describes what Enter would do on the current line.
func statusHint(sum viewport.Summary) string {
	switch sum.Kind {
	case jsonline.ValidJSON:
		if sum.Expanded {
			return "[JSON - Expanded]"
		}
		return "[JSON - Press Enter to expand]"
	case jsonline.InvalidJSONLike:
		return "[Invalid JSON]"
	default:
		return ""
	}
}

// contentWidth is the number of cells available inside the box.
func (m Model) contentWidth() int {
	return maxInt(1, m.width-boxHorizontals)
}

func renderNonEmpty(s string, render func(...string) string) string {
	if s == "" {
		return ""
	}
	return render(s)
}
