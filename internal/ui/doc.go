// Package ui runs a menu session as a Bubble Tea program.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses are matched against a bubbles/key keymap and translated to
//     the same events the raw decoder produces, then handed to
//     session.Session.Dispatch. Navigation, actions and error reporting all
//     live in the session; the model only owns the terminal size.
//   - An optional backend.Watcher streams resize events for terminals that
//     do not deliver tea.WindowSizeMsg.
//
// View renders the session's current frame as a padded text block.
package ui
