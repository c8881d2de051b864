// Package machine implements the storage units of the simulator: a
// fixed-size register file addressed by index or by textual descriptor
// (r[0], r[1], ...), and a fixed-size bounds-checked memory unit.
//
// Both units hold Word values. They are created once, at processor
// construction, and persist for the processor's entire lifetime; their
// sizes never change after construction.
package machine
