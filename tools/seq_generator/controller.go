package seq_generator

import (
	"compress/gzip"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"
)

// For repeated -seq arguments
type SequenceRequest struct {
	ID     string
	Length int
	GCBias float64
}

type MultiSeqFlag []SequenceRequest

func (m *MultiSeqFlag) String() string { return fmt.Sprint(*m) }
func (m *MultiSeqFlag) Set(value string) error {
	parts := strings.Split(value, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return fmt.Errorf("expected format: name,length[,gc_bias]")
	}
	length, err := strconv.Atoi(parts[1])
	if err != nil || length < 0 {
		return fmt.Errorf("invalid length")
	}
	gc := 0.5
	if len(parts) == 3 {
		gc, err = strconv.ParseFloat(parts[2], 64)
		if err != nil || gc < 0.0 || gc > 1.0 {
			return fmt.Errorf("invalid gc_bias")
		}
	}
	*m = append(*m, SequenceRequest{ID: parts[0], Length: length, GCBias: gc})
	return nil
}

// Render builds the FASTA text for every request.
func Render(rng *rand.Rand, reqs []SequenceRequest) string {
	var fastaOut strings.Builder
	for _, req := range reqs {
		fastaOut.WriteString(FastaRecord(req.ID, GenerateDNA(rng, req.Length, req.GCBias), 60))
	}
	return fastaOut.String()
}

// Run generates random DNA for feeding the analyzer, the batch report or a
// watched directory.
func Run(args []string) {
	fs := flag.NewFlagSet("ran_dna_gen", flag.ExitOnError)

	name := fs.String("name", "random_seq", "Sequence name")
	length := fs.Int("length", 100, "Sequence length")
	gc := fs.Float64("gc_bias", 0.5, "GC bias (0.0-1.0)")
	seed := fs.Int64("seed", 0, "Random seed (0 = time based)")
	outFile := fs.String("out_file", "", "Output FASTA file")
	gzipOut := fs.Bool("gzip", false, "Compress output with gzip")

	var multiSeq MultiSeqFlag
	fs.Var(&multiSeq, "seq", "Use format name,length[,gc_bias] (repeatable)")

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

	if *gc < 0.0 || *gc > 1.0 {
		fmt.Fprintln(os.Stderr, "Error: -gc_bias must be between 0.0 and 1.0")
		os.Exit(1)
	}
	if *length < 0 {
		fmt.Fprintln(os.Stderr, "Error: -length must not be negative")
		os.Exit(1)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	reqs := []SequenceRequest(multiSeq)
	if len(reqs) == 0 {
		reqs = []SequenceRequest{{ID: *name, Length: *length, GCBias: *gc}}
	}
	output := Render(rng, reqs)

	if *outFile == "" {
		if *gzipOut {
			fmt.Fprintln(os.Stderr, "Cannot gzip to stdout. Specify -out_file.")
			os.Exit(1)
		}
		fmt.Print(output)
		return
	}

	path := *outFile
	if *gzipOut {
		path += ".gz"
		if err := writeGzip(path, output); err != nil {
			fmt.Println("Error writing compressed data:", err)
			os.Exit(1)
		}
	} else {
		err := os.WriteFile(path, []byte(output), 0644)
		if err != nil {
			fmt.Println("Error writing file:", err)
			os.Exit(1)
		}
	}
	fmt.Printf("Wrote sequence to %s\n", path)
}

func writeGzip(path, output string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	gz := gzip.NewWriter(file)
	if _, err := gz.Write([]byte(output)); err != nil {
		gz.Close()
		return err
	}
	return gz.Close()
}
