package analysis

import "sort"

// AminoAcid is the lookup result for a codon.
type AminoAcid struct {
	Name   string `json:"name" msgpack:"name"`
	Abbrev string `json:"abbrev" msgpack:"abbrev"` // 3-letter
	Symbol string `json:"symbol" msgpack:"symbol"` // 1-letter
}

// IsStop reports whether the record is the stop signal.
func (a AminoAcid) IsStop() bool { return a == Stop }

// Stop is the record shared by TAA, TAG and TGA.
var Stop = AminoAcid{Name: "STOP", Abbrev: "Stop", Symbol: "*"}

var (
	phe = AminoAcid{"Phenylalanine", "Phe", "F"}
	leu = AminoAcid{"Leucine", "Leu", "L"}
	ile = AminoAcid{"Isoleucine", "Ile", "I"}
	met = AminoAcid{"Methionine", "Met", "M"}
	val = AminoAcid{"Valine", "Val", "V"}
	ser = AminoAcid{"Serine", "Ser", "S"}
	pro = AminoAcid{"Proline", "Pro", "P"}
	thr = AminoAcid{"Threonine", "Thr", "T"}
	ala = AminoAcid{"Alanine", "Ala", "A"}
	tyr = AminoAcid{"Tyrosine", "Tyr", "Y"}
	his = AminoAcid{"Histidine", "His", "H"}
	gln = AminoAcid{"Glutamine", "Gln", "Q"}
	asn = AminoAcid{"Asparagine", "Asn", "N"}
	lys = AminoAcid{"Lysine", "Lys", "K"}
	asp = AminoAcid{"Aspartic Acid", "Asp", "D"}
	glu = AminoAcid{"Glutamic Acid", "Glu", "E"}
	cys = AminoAcid{"Cysteine", "Cys", "C"}
	trp = AminoAcid{"Tryptophan", "Trp", "W"}
	arg = AminoAcid{"Arginine", "Arg", "R"}
	gly = AminoAcid{"Glycine", "Gly", "G"}
)

// Standard genetic code. Read-only after package init.
var codonTable = map[string]AminoAcid{
	// Phenylalanine
	"TTT": phe, "TTC": phe,
	// Leucine
	"TTA": leu, "TTG": leu, "CTT": leu, "CTC": leu, "CTA": leu, "CTG": leu,
	// Isoleucine
	"ATT": ile, "ATC": ile, "ATA": ile,
	// Methionine (start)
	"ATG": met,
	// Valine
	"GTT": val, "GTC": val, "GTA": val, "GTG": val,
	// Serine
	"TCT": ser, "TCC": ser, "TCA": ser, "TCG": ser, "AGT": ser, "AGC": ser,
	// Proline
	"CCT": pro, "CCC": pro, "CCA": pro, "CCG": pro,
	// Threonine
	"ACT": thr, "ACC": thr, "ACA": thr, "ACG": thr,
	// Alanine
	"GCT": ala, "GCC": ala, "GCA": ala, "GCG": ala,
	// Tyrosine
	"TAT": tyr, "TAC": tyr,
	// Histidine
	"CAT": his, "CAC": his,
	// Glutamine
	"CAA": gln, "CAG": gln,
	// Asparagine
	"AAT": asn, "AAC": asn,
	// Lysine
	"AAA": lys, "AAG": lys,
	// Aspartic Acid
	"GAT": asp, "GAC": asp,
	// Glutamic Acid
	"GAA": glu, "GAG": glu,
	// Cysteine
	"TGT": cys, "TGC": cys,
	// Tryptophan
	"TGG": trp,
	// Arginine
	"CGT": arg, "CGC": arg, "CGA": arg, "CGG": arg, "AGA": arg, "AGG": arg,
	// Glycine
	"GGT": gly, "GGC": gly, "GGA": gly, "GGG": gly,
	// Stop codons
	"TAA": Stop, "TAG": Stop, "TGA": Stop,
}

// LookupCodon returns the amino acid for an uppercase codon.
func LookupCodon(codon string) (AminoAcid, bool) {
	aa, ok := codonTable[codon]
	return aa, ok
}

// Codons returns every codon in the table, sorted.
func Codons() []string {
	out := make([]string, 0, len(codonTable))
	for c := range codonTable {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// IsStartCodon reports whether codon is the canonical start codon ATG.
func IsStartCodon(codon string) bool {
	return codon == "ATG"
}
