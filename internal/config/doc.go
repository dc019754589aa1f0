// Package config loads and saves smartpager's user settings.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/smartpager/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
//	theme = "Dracula"          # UI palette (Dracula, Nightfox, Slate)
//	syntax_style = "dracula"   # chroma style for expanded JSON
//	gg_timeout_ms = 500        # window for the second "g" of "gg"
//	mouse = true               # click to select a line, wheel to move
//	log_file = ""              # debug log destination; empty disables logging
//	log_level = "info"
//
// Every field is optional. Tilde expansion is applied to the config path and
// to log_file.
//
// # Saving
//
// Save writes all fields back to disk, creating parent directories. The UI uses
// it to persist the theme when the user cycles themes.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// Missing config files are NOT an error, so the pager works without any setup.
package config
