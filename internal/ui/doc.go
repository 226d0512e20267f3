// Package ui contains the Bubble Tea program for the takeoff entry form.
// The Model type focuses on message orchestration, while dedicated helpers
// own focus, entry, inventory, rendering and modal state.
//
// Message flow:
//   - Picker timer ticks (wheel.TickMsg) are offered to every live picker
//     before anything else; each picker drops ticks that are not its own.
//   - When a modal is open (theme, settings, clear confirmation) it receives
//     key and mouse input and its own internal messages. Everything with a
//     registered handler still reaches that handler.
//   - Otherwise messages are routed through a typed handler registry so each
//     tea.Msg is handled by a focused function (keys, mouse, resize, export
//     results, catalog events).
//
// State ownership:
//   - The draft item lives on the Model. Pickers report committed values
//     through their onChange callbacks; the Model pushes external changes
//     (the door minimum height, catalog reloads) back with SetValue and
//     SetOptions.
//   - The inventory is an inventory.List; its on-screen cursor, filter and
//     marks live in internal/ui/state.List.
//   - The catalog is held by a state.CatalogStore that the dispatcher updates
//     from watcher events and the settings modal edits directly.
//
// Exports run through the command bus so file writes happen off the update
// loop and report back with exportResultMsg.
package ui
