// Package reduce rewrites higher-order binary objectives as quadratic ones.
//
// ReduceDegree replaces variable pairs shared by many high-degree terms with
// ancillary variables until every term has at most two variables. Each
// Ancilla{Var, A, B} stands for the product A·B.
//
// MakeQuadratic takes a pseudo-Boolean function given as a truth table
// f[x] (x read as a bit vector, bit i = variable i), computes its
// multilinear coefficients with the fast Möbius transform, reduces the
// degree of the resulting terms, and emits an upper-triangular QUBO.
// For every ancilla a = x·y the penalty
//
//	w·(3a − 2ax − 2ay + xy)
//
// is added; it is zero exactly when a = x·y and at least w otherwise, so
// minimizing the QUBO over the ancillas reproduces f.
//
// Errors:
//
//   - ErrInvalidTerm    negative index or repeated variable in a term.
//   - ErrInvalidTable   table length not a power of two, f[0] ≠ 0, or a non-finite value.
//   - ErrInvalidPenalty non-positive penalty weight.
//
// Complexity: ReduceDegree is O(P log P) heap work, where P is the number of
// pair occurrences across terms of degree ≥ 3. MakeQuadratic is O(n·2ⁿ) for
// the transform plus the reduction.
package reduce
