package viewport

import (
	"strings"

	"github.com/five82/smartpager/internal/jsonline"
)

const collapsed = -1

// Options configure a Controller.
type Options struct {
	Height       int // content rows; values below 1 are treated as 1
	ChromeOffset int // screen rows above the first content row
}

// Row is one visible document line.
type Row struct {
	Index   int
	Line    jsonline.Classified
	Current bool
}

// Content is the content model handed to the display surface.
type Content struct {
	Rows []Row
	// Expansion holds the pretty-printed lines of the current line while it
	// is expanded. It belongs directly beneath the row with Current set.
	Expansion []string
}

// Summary describes the cursor for the status line.
type Summary struct {
	Position int // 1-based; 0 for an empty document
	Total    int
	Kind     jsonline.Kind
	Expanded bool
}

// Controller owns the session state of one pager: the document, the cursor,
// the scroll offset and which line is expanded. It is not safe for
// concurrent use.
type Controller struct {
	lines        []string
	cursor       int
	scroll       int
	expanded     int
	height       int
	chromeOffset int
}

// New returns a Controller over an empty document.
func New(opts Options) *Controller {
	c := &Controller{
		expanded:     collapsed,
		chromeOffset: opts.ChromeOffset,
	}
	c.SetViewportHeight(opts.Height)
	return c
}

// Load replaces the document and resets the session state.
func (c *Controller) Load(lines []string) {
	c.lines = lines
	c.cursor = 0
	c.scroll = 0
	c.expanded = collapsed
}

// SetViewportHeight records the number of content rows available. The scroll
// offset is re-clamped on the next VisibleContent call.
func (c *Controller) SetViewportHeight(height int) {
	c.height = max(1, height)
}

func (c *Controller) Height() int       { return c.height }
func (c *Controller) Len() int          { return len(c.lines) }
func (c *Controller) Cursor() int       { return c.cursor }
func (c *Controller) ScrollOffset() int { return c.scroll }

// ExpandedLine returns the expanded line index, if any.
func (c *Controller) ExpandedLine() (int, bool) {
	if c.expanded == collapsed {
		return 0, false
	}
	return c.expanded, true
}

// Line returns the raw text of line i, or "" when i is out of range.
func (c *Controller) Line(i int) string {
	if i < 0 || i >= len(c.lines) {
		return ""
	}
	return c.lines[i]
}

func (c *Controller) MoveUp()       { c.moveTo(c.cursor - 1) }
func (c *Controller) MoveDown()     { c.moveTo(c.cursor + 1) }
func (c *Controller) MoveToTop()    { c.moveTo(0) }
func (c *Controller) MoveToBottom() { c.moveTo(len(c.lines) - 1) }

// PageDown moves the cursor half a viewport down.
func (c *Controller) PageDown() { c.moveTo(c.cursor + c.height/2) }

// PageUp moves the cursor half a viewport up.
func (c *Controller) PageUp() { c.moveTo(c.cursor - c.height/2) }

// JumpToRow places the cursor on the line shown at screenRow. Rows that do
// not map to a document line are ignored.
func (c *Controller) JumpToRow(screenRow int) {
	index := c.scroll + screenRow - c.chromeOffset
	if index < 0 || index >= len(c.lines) {
		return
	}
	c.moveTo(index)
}

// ToggleExpansion expands or collapses the current line. Lines without a
// printable JSON value are left alone.
func (c *Controller) ToggleExpansion() {
	if len(c.lines) == 0 {
		return
	}
	if c.expanded == c.cursor {
		c.expanded = collapsed
		return
	}
	if _, ok := jsonline.Classify(c.lines[c.cursor]).Pretty(); !ok {
		return
	}
	c.expanded = c.cursor
}

// moveTo is the only path that changes the cursor. It clamps the target and
// always collapses the expanded line.
func (c *Controller) moveTo(index int) {
	c.cursor = clamp(index, 0, max(0, len(c.lines)-1))
	c.expanded = collapsed
}

// VisibleContent scrolls just enough to keep the cursor visible and returns
// the lines in the viewport.
func (c *Controller) VisibleContent() Content {
	c.updateScroll()

	end := min(c.scroll+c.height, len(c.lines))
	content := Content{Rows: make([]Row, 0, end-c.scroll)}
	for i := c.scroll; i < end; i++ {
		row := Row{
			Index:   i,
			Line:    jsonline.Classify(c.lines[i]),
			Current: i == c.cursor,
		}
		if row.Current && c.expanded == i {
			if pretty, ok := row.Line.Pretty(); ok {
				content.Expansion = strings.Split(pretty, "\n")
			}
		}
		content.Rows = append(content.Rows, row)
	}
	return content
}

func (c *Controller) updateScroll() {
	if c.cursor < c.scroll {
		c.scroll = c.cursor
	} else if c.cursor >= c.scroll+c.height {
		c.scroll = c.cursor - c.height + 1
	}
	c.scroll = clamp(c.scroll, 0, max(0, len(c.lines)-c.height))
}

// StatusSummary reports the cursor position and the kind of the current line.
func (c *Controller) StatusSummary() Summary {
	if len(c.lines) == 0 {
		return Summary{Kind: jsonline.PlainText}
	}
	return Summary{
		Position: c.cursor + 1,
		Total:    len(c.lines),
		Kind:     jsonline.Classify(c.lines[c.cursor]).Kind,
		Expanded: c.expanded == c.cursor,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
