package batch_report

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"dna_analyzer_go/analysis"
	common "dna_analyzer_go/utils"
)

func Run(args []string) {

	fs := flag.NewFlagSet("batch", flag.ExitOnError) // Isolated flag set specifically for "batch" subcommand

	inFile := fs.String("in_file", "", "Multi-FASTA input (plain or gzip)")
	outFile := fs.String("out_file", "batch_report", "Prefix for report files")
	csvOut := fs.Bool("csv_out", false, "Write summary statistics to <out_file>.csv")
	perRecord := fs.Bool("per_record", false, "Write per-record results to <out_file>_per_record.csv")
	htmlOut := fs.Bool("html", false, "Write summary and graphs to <out_file>.html")
	maxLen := fs.Int("max_len", 0, "Reject records longer than this (0 = no limit)")

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

	if *inFile == "" {
		fmt.Println("Error: in_file is required")
		fs.Usage()
		os.Exit(1)
	}

	if _, err := common.CheckFileReady(*inFile, 0); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	records, err := CollectFile(*inFile, analysis.Analyzer{MaxLength: *maxLen})
	if err != nil {
		fmt.Println("Failed to parse FASTA:", err)
		os.Exit(1)
	}
	if len(records) == 0 {
		fmt.Println("No FASTA records found in", *inFile)
		os.Exit(1)
	}

	stats := Summarize(records)
	PrintSummary(os.Stdout, *inFile, stats)

	if *csvOut {
		if err := writeFile(*outFile+".csv", func(w io.Writer) error { return WriteSummaryCSV(w, stats) }); err != nil {
			fmt.Println("Failed to write CSV:", err)
		} else {
			fmt.Printf("Wrote batch statistics to CSV file: %s.csv\n", *outFile)
		}
	}

	if *perRecord {
		if err := writeFile(*outFile+"_per_record.csv", func(w io.Writer) error { return WritePerRecordCSV(w, records) }); err != nil {
			fmt.Println("Failed to write per-record CSV:", err)
		} else {
			fmt.Printf("Wrote per-record results to CSV file: %s_per_record.csv\n", *outFile)
		}
	}

	if *htmlOut {
		var svgLength, svgGC string

		var wg sync.WaitGroup
		wg.Add(2) // Number of concurrent graphs

		go func() {
			defer wg.Done()
			if s, err := GenerateLengthPlot(LengthValues(records)); err == nil {
				svgLength = s
			} else {
				fmt.Println("Failed to generate length plot:", err)
			}
		}()

		go func() {
			defer wg.Done()
			if s, err := GenerateGCContentPlot(GCValues(records)); err == nil {
				svgGC = s
			} else {
				fmt.Println("Failed to generate GC plot:", err)
			}
		}()

		wg.Wait()

		title := "DNA Batch Report: " + filepath.Base(*inFile)
		err := writeFile(*outFile+".html", func(w io.Writer) error {
			return WriteHTMLReport(w, title, stats, records, svgLength, svgGC)
		})
		if err != nil {
			fmt.Println("Failed to write HTML:", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote HTML file: %s.html\n", *outFile)
	}
}

// PrintSummary writes the console overview of a batch
func PrintSummary(w io.Writer, name string, stats BatchStats) {
	fmt.Fprintf(w, "Batch summary for %s\n", name)
	fmt.Fprintf(w, "  Records:        %d (%d valid, %d invalid)\n", stats.TotalRecords, stats.ValidRecords, stats.InvalidRecords)
	for _, reason := range []string{ReasonEmpty, ReasonInvalidSymbol, ReasonTooLong, ReasonOther} {
		if n := stats.Invalid[reason]; n > 0 {
			fmt.Fprintf(w, "    %-14s %d\n", reason+":", n)
		}
	}
	if stats.ValidRecords == 0 {
		return
	}
	fmt.Fprintf(w, "  Total bases:    %d\n", stats.TotalBases)
	fmt.Fprintf(w, "  Length:         min %d, max %d, mean %.2f, median %.2f\n", stats.MinLength, stats.MaxLength, stats.AvgLength, stats.MedianLength)
	fmt.Fprintf(w, "  GC content:     mean %.2f%%, sd %.2f, median %.2f%%\n", stats.AvgGC, stats.GCStdDev, stats.MedianGC)
	fmt.Fprintf(w, "  Protein:        %d residues, %d stop codons\n", stats.ProteinResidues, stats.StopCodons)
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
