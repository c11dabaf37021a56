// Package population provides the rabbit/wolf stepping model.
//
// The package defines the data and transition rule of a discrete-time
// predator/prey simulation:
//
//   - [Config]: initial counts, rates, wolf introduction and horizon
//   - [YearRecord]: one (year, rabbits, wolves) row
//   - [Result]: the year-indexed sequence produced by a run
//   - [Simulate]: validates a config and steps it to completion
//
// # Example
//
//	cfg := population.DefaultConfig()
//	cfg.Years = 50
//	res, err := population.Simulate(cfg)
//	if errors.Is(err, population.ErrInvalidParameter) {
//	    // report the offending field
//	}
//
// # Thread Safety
//
// Simulate holds no shared state. Concurrent calls with different
// configurations never interact.
package population
