// Package problem defines the shared data model of qembed: variable pairs,
// coupling maps, QUBO matrices, chain embeddings, and the algebra that
// converts between the Ising and QUBO formulations.
//
// What:
//
//   - Pair is an unordered variable pair stored in canonical (ascending) order.
//   - Couplings is a sparse quadratic-term map keyed by Pair.
//   - QUBO is a sparse upper-triangular matrix; diagonal keys hold linear terms.
//   - Entries is the list form {I, J, Value} used by problem files.
//   - Embedding maps every logical variable to a chain of physical nodes.
//
// Conversions:
//
//	s = 2x − 1   (spin s ∈ {−1,+1}, bit x ∈ {0,1})
//
//	IsingToQubo:  Q[i,i] = 2h_i − 2ΣJ_ik,  Q[i,k] = 4J_ik,  offset = ΣJ − Σh
//	QuboToIsing:  h_i = Q_ii/2 + ΣQ_ik/4,   J_ik = Q_ik/4,   offset = ΣQ_ii/2 + ΣQ_ik/4
//
// For every assignment, E_ising(s) = E_qubo(x) + offset (IsingToQubo) and
// E_qubo(x) = E_ising(s) + offset (QuboToIsing).
//
// Errors:
//
//   - ErrInvalidProblem   malformed h/J (diagonal couplings, indices out of range).
//   - ErrInvalidEmbedding malformed chains (empty, overlapping, disconnected).
//
// Both sentinels are shared by the embedding and unembed packages and are
// always wrapped with context; match them with errors.Is.
//
// Complexity: every operation is linear in the number of entries, plus
// O(k log k) where a canonical ordering is produced.
package problem
