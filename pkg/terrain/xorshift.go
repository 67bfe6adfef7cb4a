// Package terrain builds the heightfield cubeterm renders: a coarse grid of
// pseudo-random digits upsampled into a dense, periodic value-noise field.
package terrain

// Seed is the state of a xorshift32 generator. It is a plain value: Next
// returns the successor state instead of mutating anything, so callers that
// need reproducibility only have to keep the value they started from.
type Seed uint32

// Next advances the generator once and returns the produced value together
// with the new state. For xorshift32 the two are the same number.
func (s Seed) Next() (uint32, Seed) {
	x := uint32(s)
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return x, Seed(x)
}
