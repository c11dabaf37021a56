// Package viz provides a terminal playback of a population run.
//
// [Model] is a Bubble Tea model that reveals one simulated year per tick,
// drawing the visible years as a table and an asciigraph chart.
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	→/←   - Step one year forward/back
//	R     - Restore initial rates and restart from year 0
//	Tab   - Cycle the selected rate
//	↑/↓   - Raise/lower the selected rate by 5% and re-run
//	T     - Cycle color themes
//	Q     - Quit
package viz
