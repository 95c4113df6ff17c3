// Package mhd provides analytic magnetohydrodynamic stability checks for a
// fixed tokamak equilibrium.
//
// Each instability class implements the [Evaluator] interface, comparing a
// closed-form stability quantity against a threshold from [Limits]:
//
//   - [Ballooning]: pressure-gradient modes, checked across a radial scan
//   - [Kink]: current-driven modes against the Troyon limit
//   - [Tearing]: resistive reconnection at each rational surface
//   - [NTM]: neoclassical tearing seed-island trigger
//   - [Sawtooth]: axis safety factor trigger condition
//   - [RWM]: resistive wall modes against the no-wall beta limit
//   - [ELM]: mitigated edge energy-loss fraction (informational)
//
// These are algebraic threshold comparisons on one equilibrium, not a
// numerical MHD solve: there is no eigenvalue problem, grid, or time
// evolution. [Run] executes all seven in fixed order and aggregates them
// into a [Report].
package mhd
