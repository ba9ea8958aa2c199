// Package population computes the scalar density field that gates branch
// generation. A NoiseSource supplies raw noise samples; NewValueNoise is
// a self-contained deterministic value-noise generator, and
// NewDefaultField wires it up under a given seed. Callers needing a
// different noise algorithm (perlin, simplex, or otherwise) supply their
// own NoiseSource via NewField without touching the octave composition.
//
// Field.At composes three octaves of the underlying noise into a single
// value in [0,1], and PopOnRoad averages that value across a road's two
// endpoints — the entry point the branch generator uses.
package population
