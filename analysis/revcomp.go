package analysis

// BasePair aligns a base on the forward strand with its complement.
type BasePair struct {
	Original   string `json:"original" msgpack:"original"`
	Complement string `json:"complement" msgpack:"complement"`
}

var complementOf = [256]byte{
	'A': 'T',
	'T': 'A',
	'G': 'C',
	'C': 'G',
}

// Complement returns the Watson-Crick partner of base, or 0 if base is not
// one of A, T, G, C.
func Complement(base byte) byte {
	return complementOf[base]
}

// ReverseComplement complements every base in original order, then reverses
// the result.
func ReverseComplement(seq string) string {
	comp := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		comp[i] = Complement(seq[i])
	}
	for i, j := 0, len(comp)-1; i < j; i, j = i+1, j-1 {
		comp[i], comp[j] = comp[j], comp[i]
	}
	return string(comp)
}

// ComplementPairs returns one pair per base in 5' to 3' order.
func ComplementPairs(seq string) []BasePair {
	pairs := make([]BasePair, len(seq))
	for i := 0; i < len(seq); i++ {
		pairs[i] = BasePair{
			Original:   seq[i : i+1],
			Complement: string(Complement(seq[i])),
		}
	}
	return pairs
}

// ReversedComplementPairs returns a reversed copy of pairs (3' to 5').
func ReversedComplementPairs(pairs []BasePair) []BasePair {
	out := make([]BasePair, len(pairs))
	for i, p := range pairs {
		out[len(pairs)-1-i] = p
	}
	return out
}
