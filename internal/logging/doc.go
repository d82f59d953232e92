// Package logging provides logging utilities for dmx-launcher.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("menu loaded", "entries", n, "separator", sep)
//	logging.Warn("config candidate unreadable", "path", path)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Nothing selected")
//	logging.UserSuccess("%s: menu is valid", path)
//	logging.UserWarning("Menu %s has no programs", name)
//	logging.UserError("Failed to launch %s: %v", key, err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// The dmx selection core itself never logs; errors propagate to the
// caller and only the CLI decides what to show.
package logging
