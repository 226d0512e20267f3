// Package wheel implements the value picker used by the entry form: a
// vertically scrolling, snap-aligned strip of options where the centred row
// is the selection.
//
// A Picker keeps three views of the selection consistent: the continuous
// scroll offset, the nearest option index, and the externally owned value.
// The owner passes the value in (New/SetValue) and receives change requests
// through the onChange callback; the picker never treats its own copy as the
// source of truth once the owner speaks again.
//
// Phases:
//   - Idle: the picker mirrors the controlled value. SetValue and SetOptions
//     resynchronise the index and offset immediately and never call onChange.
//   - Dragging: scroll events are arriving. Each event moves the offset,
//     updates the live index and re-arms the quiescence timer. External
//     updates are recorded but not applied.
//   - Settling: the gesture ended (pointer release or quiescence). The commit
//     snaps to the nearest index, reports it, glides to the exact offset and
//     returns to Idle after the settle delay.
//
// Timers are tea.Tick commands carrying the picker ID and a generation tag.
// Arming a timer bumps the tag, so only the most recent timer is honoured and
// an interrupted gesture never commits. Close bumps the tag for good.
package wheel
