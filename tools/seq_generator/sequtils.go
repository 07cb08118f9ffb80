package seq_generator

import "strings"

// WrapFasta breaks seq into lines of at most width characters, each
// terminated by a newline.
func WrapFasta(seq string, width int) string {
	if width <= 0 {
		return seq + "\n"
	}
	var out strings.Builder
	for i := 0; i < len(seq); i += width {
		end := i + width
		if end > len(seq) {
			end = len(seq)
		}
		out.WriteString(seq[i:end] + "\n")
	}
	return out.String()
}

// FastaRecord formats one record with a header line.
func FastaRecord(id, seq string, width int) string {
	return ">" + id + "\n" + WrapFasta(seq, width)
}
