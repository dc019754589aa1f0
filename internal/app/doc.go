// Package app is the composition root of smartpager.
//
// Run performs, in order:
//
//  1. Load ~/.config/smartpager/config.toml (or the --config path) and apply
//     command-line overrides
//  2. Open the debug log (a file, or nothing)
//  3. Read the whole document, failing before the terminal is touched
//  4. Start the Bubble Tea UI and block until the user quits or the context
//     is cancelled
package app
