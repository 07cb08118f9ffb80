package sanity_check

import (
	"fmt"
	"os"

	"dna_analyzer_go/analysis"
	"dna_analyzer_go/config" // Version control file
)

// Run performs a simple sanity check to ensure the analyzer is running
// properly, printing a helpful message and version number. A failed check
// exits with status 1.
func Run(args []string) {
	if err := Check(); err != nil {
		fmt.Printf("Sanity check FAILED (%s): %v\n", config.Main_version, err)
		os.Exit(1)
	}
	fmt.Printf("Successfully running DNA Analyzer! (%s)\n", config.Main_version)
}

// Check runs a known-answer analysis of ATGCGT.
func Check() error {
	return checkKnownAnswer(analysis.Analyze)
}

func checkKnownAnswer(analyze func(string) (*analysis.Result, error)) error {
	res, err := analyze("ATGCGT")
	if err != nil {
		return fmt.Errorf("analysis of ATGCGT failed: %w", err)
	}
	if res.Protein != "MR" || res.ReverseComplement != "ACGCAT" || res.GCContent != 50.0 {
		return fmt.Errorf("unexpected analysis of ATGCGT: protein %q, reverse complement %q, GC %.2f",
			res.Protein, res.ReverseComplement, res.GCContent)
	}
	return nil
}
