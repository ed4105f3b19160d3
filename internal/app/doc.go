// Package app is the composition root for the homes TUI.
//
// Run loads an optional .env file, reads config.toml with HOMES_* overrides,
// opens the JSON log file, builds the HTTP gateway, reads the saved theme and
// then hands everything to ui.Run, which blocks until the user quits.
//
// Startup failures (bad config, unwritable log file, unusable API base) are
// returned to the caller. Failures talking to the API after startup are shown
// in the UI and never end the program. Cancelling the context is treated as a
// normal exit.
package app
