// Package ui is the terminal surface of the pager, built on Bubble Tea.
//
// The Model owns a viewport.Controller and translates terminal events into
// controller operations. Rendering reads the controller's visible content
// once per frame and lays it out as:
//
//   - a one-row header naming the file
//   - a bordered box with one row per visible line, the current line marked
//     with "► " and, when expanded, its indented and highlighted JSON block
//   - a one-row status line with the position, a hint for the current line
//     and short key help
//
// Key bindings follow vim: j/k move, gg and G jump, ctrl+d and ctrl+u move
// half a page, Enter or Space toggle expansion. "gg" is a two-key sequence;
// a pending g is dropped after the configured timeout.
//
// Mouse support maps a left click to the line under the pointer and wheel
// motion to single-line moves. Clicks inside an expansion block are ignored.
//
// Themes are cycled with T and the choice is written back to the config
// file.
package ui
