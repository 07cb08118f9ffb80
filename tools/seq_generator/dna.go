package seq_generator

import (
	"math/rand"
)

// GenerateDNA returns a random A/T/G/C sequence. gcBias is the expected
// G+C fraction (0.0-1.0), split evenly between G and C.
func GenerateDNA(rng *rand.Rand, length int, gcBias float64) string {
	cWeight := gcBias / 2
	aWeight := (1 - gcBias) / 2
	tWeight := aWeight // AT bias

	seq := make([]byte, length)
	for i := 0; i < length; i++ {
		r := rng.Float64()
		switch {
		case r < aWeight:
			seq[i] = 'A'
		case r < aWeight+tWeight:
			seq[i] = 'T'
		case r < aWeight+tWeight+cWeight:
			seq[i] = 'C'
		default:
			seq[i] = 'G'
		}
	}
	return string(seq)
}
