package analysis

import "strings"

// CodonTranslation pairs a codon with its amino acid.
type CodonTranslation struct {
	Codon     string    `json:"codon" msgpack:"codon"`
	AminoAcid AminoAcid `json:"amino_acid" msgpack:"amino_acid"`
}

// Translate reads seq in frame 1, one codon at a time. Trailing bases that
// do not fill a codon are ignored.
func Translate(seq string) ([]CodonTranslation, error) {
	out := make([]CodonTranslation, 0, len(seq)/3)
	for i := 0; i+3 <= len(seq); i += 3 {
		codon := seq[i : i+3]
		aa, ok := codonTable[codon]
		if !ok {
			return nil, &UnknownCodonError{Codon: codon, Offset: i}
		}
		out = append(out, CodonTranslation{Codon: codon, AminoAcid: aa})
	}
	return out, nil
}

// ProteinString joins the 1-letter symbols of a translation. Stops
// contribute '*'.
func ProteinString(tr []CodonTranslation) string {
	var b strings.Builder
	b.Grow(len(tr))
	for _, t := range tr {
		b.WriteString(t.AminoAcid.Symbol)
	}
	return b.String()
}
