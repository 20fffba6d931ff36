// Package unembed converts physical solutions back into logical ones.
//
// A chain is intact when all of its nodes read the same value; that value is
// the logical answer. A broken chain needs a Strategy:
//
//   - MinimizeEnergy (default) greedily fixes broken chains against the
//     logical problem supplied by WithProblem, strongest local field first.
//   - Vote takes the chain majority; ties use the injected random source.
//   - Discard drops solutions that contain any broken chain.
//   - WeightedRandom draws +1 with probability equal to the +1 fraction.
//
// Randomness only comes from WithRand or WithSeed. Without either, every call
// uses a fresh stream with a fixed seed, so results are reproducible.
package unembed
