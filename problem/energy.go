package problem

// IsingEnergy evaluates Σ h_i s_i + Σ J_ik s_i s_k.
// Variables outside [0, len(spins)) contribute zero.
func IsingEnergy(h []float64, j Couplings, spins []int8) float64 {
	var e float64
	for i, v := range h {
		if i < len(spins) {
			e += v * float64(spins[i])
		}
	}
	for p, v := range j {
		if inRange(p, len(spins)) {
			e += v * float64(spins[p.I]) * float64(spins[p.J])
		}
	}
	return e
}

// Energy evaluates Σ Q_ik x_i x_k over the stored entries of q.
// Variables outside [0, len(bits)) contribute zero.
func (q QUBO) Energy(bits []int8) float64 {
	var e float64
	for p, v := range q {
		if inRange(p, len(bits)) {
			e += v * float64(bits[p.I]) * float64(bits[p.J])
		}
	}
	return e
}

// SpinsToBits maps s ∈ {−1,+1} to x = (s+1)/2.
func SpinsToBits(spins []int8) []int8 {
	bits := make([]int8, len(spins))
	for i, s := range spins {
		if s > 0 {
			bits[i] = 1
		}
	}
	return bits
}

func inRange(p Pair, n int) bool {
	return p.I >= 0 && p.J >= 0 && p.I < n && p.J < n
}
