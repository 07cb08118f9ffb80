package seq_analyzer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"dna_analyzer_go/analysis"
)

const lineWidth = 60

// WriteReport prints the human readable analysis of res
func WriteReport(w io.Writer, source string, res *analysis.Result) {
	fmt.Fprintf(w, "Source:             %s\n", source)
	fmt.Fprintf(w, "Length:             %d bp\n", res.Length)
	fmt.Fprintf(w, "GC content:         %.2f%%\n", res.GCContent)
	fmt.Fprintf(w, "Base counts:        A=%d T=%d G=%d C=%d\n", res.Bases.A, res.Bases.T, res.Bases.G, res.Bases.C)
	fmt.Fprintf(w, "Protein (%d aa):\n", res.ProteinLength)
	writeWrapped(w, res.Protein)
	fmt.Fprintln(w, "Reverse complement:")
	writeWrapped(w, res.ReverseComplement)

	if len(res.Translation) > 0 {
		fmt.Fprintln(w, "Codons:")
		for i, ct := range res.Translation {
			fmt.Fprintf(w, "  %4d  %s  %-4s %s\n", i*3+1, ct.Codon, ct.AminoAcid.Abbrev, ct.AminoAcid.Name)
		}
	}
}

// WriteJSON prints res as indented JSON
func WriteJSON(w io.Writer, res *analysis.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WritePairs prints the paired strand view in blocks of lineWidth bases.
// reversed pairs read 3' to 5' on the top strand.
func WritePairs(w io.Writer, pairs []analysis.BasePair, reversed bool) {
	topStart, topEnd := "5'", "3'"
	if reversed {
		topStart, topEnd = "3'", "5'"
	}

	for start := 0; start < len(pairs); start += lineWidth {
		end := start + lineWidth
		if end > len(pairs) {
			end = len(pairs)
		}
		var top, bottom strings.Builder
		for _, p := range pairs[start:end] {
			top.WriteString(p.Original)
			bottom.WriteString(p.Complement)
		}
		fmt.Fprintf(w, "%s %s %s\n", topStart, top.String(), topEnd)
		fmt.Fprintf(w, "   %s\n", strings.Repeat("|", end-start))
		fmt.Fprintf(w, "%s %s %s\n", topEnd, bottom.String(), topStart)
		if end < len(pairs) {
			fmt.Fprintln(w)
		}
	}
}

func writeWrapped(w io.Writer, s string) {
	if s == "" {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for i := 0; i < len(s); i += lineWidth {
		end := i + lineWidth
		if end > len(s) {
			end = len(s)
		}
		fmt.Fprintf(w, "  %s\n", s[i:end])
	}
}
