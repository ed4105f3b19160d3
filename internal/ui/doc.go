// Package ui renders the homes terminal interface with Bubble Tea.
//
// The Model owns at most one active screen controller from the views package
// (list, details or create) and swaps it on every NavigateMsg. Controllers do
// the fetching and keep request generations; this package only turns their
// state into cards, panels and forms, and turns keys into controller calls.
//
// Overlays sit above the active screen in this order: modal dialogs
// (delete confirmation, notices), the help panel and the diagnostics log
// viewer. Notices that carry a follow-up route navigate once dismissed.
//
// Themes come from a fixed palette set and the chosen name is saved to the
// preferences file whenever the user cycles it.
package ui
