// Package viz renders solved problems in the terminal.
//
// The package provides:
//
//   - [Canvas]: Braille-based pixel canvas with per-cell colors
//   - [Diagram]: free-body diagram of a [scenario.Report]
//   - [RenderReport]: lipgloss result panel with metrics and verdict
//   - an interactive Bubble Tea form started by [RunInteractive]
//
// # Key Bindings
//
//	j/k   - Move between fields
//	h/l   - Decrease/increase the selected value
//	Enter - Type a value
//	P     - Cycle presets
//	G     - Toggle the diagram
//	T     - Toggle the theory notes
//	Esc   - Back to the problem menu
package viz
