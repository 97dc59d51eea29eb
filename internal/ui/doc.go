// Package ui contains the Bubble Tea program that drives TrackMoney.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Messages are
//     routed through a typed handler registry so each tea.Msg is handled by a
//     focused function.
//   - While a menu is shown, key presses go to menu.Step, which returns an
//     Intent. The model applies it: entering a new ViewState, running a named
//     action through the command bus, or redrawing.
//   - While guided entry is active, key presses go to the entry.Form. When the
//     form completes, the pending action mutates the ledger; when it is
//     abandoned, the model re-enters the fallback state.
//
// State ownership:
//   - The current ViewState is a value rebuilt on every transition. Nothing
//     else about the screen is remembered between frames; View draws the
//     whole frame from the ViewState and the ledger.
//   - The ledger.Ledger is the only mutable domain state. Every mutation
//     happens synchronously inside Update and is persisted before Update
//     returns. A persistence failure ends the program.
package ui
