// Common package contains commonly used functions that benefit multiple tools
// Exporting these functions from the Common package reduces redundant code
package common

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"dna_analyzer_go/analysis"
)

// openMaybeGzip wraps r in a gzip reader when it starts with the gzip magic
// bytes. The returned closer releases the gzip reader only.
func openMaybeGzip(r io.Reader) (io.Reader, func() error, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1F && magic[1] == 0x8B {
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open gzip reader: %w", err)
		}
		return gr, gr.Close, nil
	}
	return br, func() error { return nil }, nil
}

// ErrMultipleRecords is returned by ReadSequence for input holding more than
// one FASTA record. Multi-FASTA files go through the batch tool.
var ErrMultipleRecords = errors.New("input holds more than one FASTA record; use the batch tool for multi-FASTA files")

// ReadSequence reads a flat sequence (plain or gzip) from r and returns the
// raw text with its FASTA header line ('>') removed. Normalization is left to
// the caller. A second record, or more than maxBytes (when maxBytes > 0), is
// an error.
// Every failure wraps analysis.ErrSourceUnavailable.
func ReadSequence(r io.Reader, maxBytes int64) (string, error) {
	reader, closeFn, err := openMaybeGzip(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", analysis.ErrSourceUnavailable, err)
	}
	defer closeFn()

	if maxBytes > 0 {
		reader = io.LimitReader(reader, maxBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("%w: %v", analysis.ErrSourceUnavailable, err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return "", fmt.Errorf("%w: input exceeds %d bytes", analysis.ErrSourceUnavailable, maxBytes)
	}

	text := string(data)
	if !strings.Contains(text, ">") {
		return text, nil
	}
	var b strings.Builder
	seenHeader, seenSequence := false, false
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, ">") {
			// a header after another header or after sequence text starts a new record
			if seenHeader || seenSequence {
				return "", fmt.Errorf("%w: %w", analysis.ErrSourceUnavailable, ErrMultipleRecords)
			}
			seenHeader = true
			continue
		}
		if trimmed != "" {
			seenSequence = true
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// ReadSequenceFile is ReadSequence for a file path.
func ReadSequenceFile(path string, maxBytes int64) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to open file: %v", analysis.ErrSourceUnavailable, err)
	}
	defer f.Close()

	seq, err := ReadSequence(f, maxBytes)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return seq, nil
}

type FastaHandler func(id string, seq string, opts map[string]interface{}) error

// StreamFastaWithOpts is a fast, memory-efficient function for streaming FASTA files of any size.
// It automatically detects and decompresses Gzipped files, treats sequences case-insensitively,
// and calls a user-defined handler function for each record.
//
// The handler must follow the FastaHandler signature and can use the 'opts' map to receive
// custom parameters, open output files, counters, filters, etc.
//
// Records without any sequence lines are still passed to the handler (with an
// empty sequence) so callers can report them.
func StreamFastaWithOpts(file string, handler FastaHandler, opts map[string]interface{}) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return StreamFastaReader(f, handler, opts)
}

// StreamFastaReader is StreamFastaWithOpts over an already open reader.
func StreamFastaReader(r io.Reader, handler FastaHandler, opts map[string]interface{}) error {
	reader, closeFn, err := openMaybeGzip(r)
	if err != nil {
		return err
	}
	defer closeFn()

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var currentID string
	var buffer []byte
	inRecord := false

	flush := func() error {
		if !inRecord {
			return nil
		}
		if err := handler(currentID, string(buffer), opts); err != nil {
			return fmt.Errorf("handler error (%s): %w", currentID, err)
		}
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return err
			}
			currentID = strings.TrimSpace(strings.TrimPrefix(line, ">"))
			buffer = buffer[:0] // reset buffer
			inRecord = true
		} else if inRecord {
			buffer = append(buffer, []byte(strings.ToUpper(line))...)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	return flush()
}
