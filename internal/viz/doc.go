// Package viz provides terminal-based visualization for limit sets.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Canvas]: Braille-based pixel canvas with line and polyline drawing
//   - [Explorer]: interactive browser for the trace parameter plane
//   - Theme selection with 3 built-in color schemes
//
// # Key Bindings
//
//	Tab   - Cycle through tunable parameters
//	↑/↓   - Nudge the selected parameter
//	P     - Cycle named presets
//	T     - Cycle color themes
//	R     - Reset to the starting parameters
//	S     - Save the current curve as SVG
//	?     - Show help overlay
//	Q     - Quit
//
// Retracing happens on every edit. A vertex budget keeps the explorer
// responsive even where the chosen traces send the limit set far
// outside the unit disk.
package viz
