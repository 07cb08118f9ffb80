package seq_analyzer

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"dna_analyzer_go/analysis"
	"dna_analyzer_go/tools/seq_generator"
	common "dna_analyzer_go/utils"
)

// Run analyzes one sequence given inline or read from a file.
func Run(args []string) {

	fs := flag.NewFlagSet("analyze", flag.ExitOnError) // Isolated flag set specifically for "analyze" subcommand

	seq := fs.String("seq", "", "DNA sequence to analyze")
	inFile := fs.String("in_file", "", "Sequence file (plain text or FASTA, optionally gzip)")
	jsonOut := fs.Bool("json", false, "Print the full result as JSON")
	maxLen := fs.Int("max_len", 1_000_000, "Reject sequences longer than this (0 = no limit)")
	rcOut := fs.String("rc_out", "", "Write the reverse complement to this FASTA file")
	pairs := fs.Bool("pairs", false, "Print the paired strand view")
	reverse := fs.Bool("reverse", false, "With -pairs, print the reversed (3' to 5') view")

	err := fs.Parse(args) // Parse inputs
	if err != nil {
		fmt.Println("Error parsing flags:", err)
		os.Exit(1)
	}

	if len(fs.Args()) > 0 { // If unparsed arguments remain:
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args()) // Flag the error and report it
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	if (*seq == "") == (*inFile == "") {
		fmt.Println("Error: provide exactly one of -seq or -in_file")
		fs.Usage()
		os.Exit(1)
	}

	raw, source := *seq, "Manual Input"
	if *inFile != "" {
		if _, err := common.CheckFileReady(*inFile, 0); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		raw, err = common.ReadSequenceFile(*inFile, 0)
		if err != nil {
			fmt.Println("Error reading file:", err)
			os.Exit(1)
		}
		source = *inFile
	}

	res, err := analysis.Analyzer{MaxLength: *maxLen}.Process(raw)
	if err != nil {
		fmt.Println(describeError(err))
		os.Exit(1)
	}

	if *jsonOut {
		if err := WriteJSON(os.Stdout, res); err != nil {
			fmt.Println("Error encoding JSON:", err)
			os.Exit(1)
		}
	} else {
		WriteReport(os.Stdout, source, res)
	}

	if *pairs {
		fmt.Println()
		if *reverse {
			WritePairs(os.Stdout, res.ReversedComplementPairs, true)
		} else {
			WritePairs(os.Stdout, res.ComplementPairs, false)
		}
	}

	if *rcOut != "" {
		record := seq_generator.FastaRecord("reverse_complement", res.ReverseComplement, lineWidth)
		if err := os.WriteFile(*rcOut, []byte(record), 0644); err != nil {
			fmt.Println("Error writing file:", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote reverse complement to %s\n", *rcOut)
	}
}

// describeError turns an analysis error into the message shown to the user
func describeError(err error) string {
	var symErr *analysis.InvalidSymbolError
	var tooLong *analysis.TooLongError
	switch {
	case errors.Is(err, analysis.ErrEmptySequence):
		return "Please enter a DNA sequence."
	case errors.As(err, &symErr):
		return fmt.Sprintf("Invalid DNA sequence. Use only A, T, G, and C. (found %q at position %d)", symErr.Symbol, symErr.Position)
	case errors.As(err, &tooLong):
		return fmt.Sprintf("Sequence is too long: %d bp, limit is %d.", tooLong.Length, tooLong.Max)
	default:
		return "Analysis failed: " + err.Error()
	}
}
