package analysis

import "math"

// BaseCounts tallies each nucleotide in a sequence.
type BaseCounts struct {
	A int `json:"a" msgpack:"a"`
	T int `json:"t" msgpack:"t"`
	G int `json:"g" msgpack:"g"`
	C int `json:"c" msgpack:"c"`
}

// Length returns the number of symbols in seq.
func Length(seq string) int {
	return len(seq)
}

// CountBases counts A, T, G and C. Anything else is ignored.
func CountBases(seq string) BaseCounts {
	var bc BaseCounts
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A':
			bc.A++
		case 'T':
			bc.T++
		case 'G':
			bc.G++
		case 'C':
			bc.C++
		}
	}
	return bc
}

// GCContent returns the percentage of G and C bases rounded to two decimals.
// An empty sequence yields 0.
func GCContent(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	bc := CountBases(seq)
	return round2(float64(bc.G+bc.C) / float64(len(seq)) * 100)
}

// round2 rounds half away from zero at the second decimal place.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
