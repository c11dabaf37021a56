// Package automation runs batches of population simulations: YAML
// scenarios built from presets, and one-parameter sweeps executed in
// parallel through sim.Ensemble.
package automation
