// Package viewport implements the navigation state of the pager.
//
// A Controller holds the loaded lines, the cursor, the scroll offset and the
// expanded line. Navigation methods mutate that state; VisibleContent and
// StatusSummary turn it into a content model for whatever draws the screen.
//
// Invariants:
//
//   - 0 <= cursor < len(lines), or cursor == 0 for an empty document
//   - after VisibleContent, scroll <= cursor < scroll+height and
//     0 <= scroll <= max(0, len(lines)-height)
//   - the expanded line, when set, equals the cursor; every cursor move
//     collapses it
//
// Scrolling is minimal: the window moves only as far as needed to keep the
// cursor on screen and never re-centers.
package viewport
