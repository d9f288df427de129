// Package viz provides terminal playback for integrated trajectories.
//
// The package implements a TUI using the Bubble Tea framework:
//
//   - [Playback]: loops over a finished trajectory, drawing the current
//     point and a fixed-length trail whose opacity rises toward the head
//   - [Canvas]: Braille-based pixel canvas with per-cell colour levels
//   - [PlotSeries]: static x(t) / y(t) chart
//
// Axis bounds come from the min/max of the finite samples plus a fixed
// margin, so degenerate runs still render what they can.
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	+/-   - Double/halve playback speed
//	R     - Restart from the first point
//	T     - Cycle color themes
//	?     - Toggle full help
//	Q     - Quit
package viz
