// Package views holds the screen controllers: the home list, a single home
// with its delete flow, and the add-home form.
//
// Controllers are plain state machines. Mount returns the tea.Cmd that
// performs the initial request; results come back as messages that are fed
// to Update. Every request carries the generation it was issued under, and a
// result is applied only while the controller is still mounted under that
// generation, so responses that arrive after the user has navigated away are
// dropped.
//
// Outcomes the user must acknowledge are emitted as NoticeMsg. A notice may
// carry a follow-up NavigateMsg which the root model performs once, after the
// notice is dismissed.
package views
