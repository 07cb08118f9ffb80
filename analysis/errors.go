package analysis

import (
	"errors"
	"fmt"
)

// Input conditions reported to callers. None of them are fatal; message
// formatting is left to whoever presents the error.
var (
	ErrEmptySequence     = errors.New("empty sequence")
	ErrInvalidSymbol     = errors.New("invalid nucleotide symbol")
	ErrSequenceTooLong   = errors.New("sequence exceeds length limit")
	ErrUnknownCodon      = errors.New("codon missing from codon table")
	ErrSourceUnavailable = errors.New("sequence source unavailable")
)

// InvalidSymbolError reports the first non A/T/G/C character found.
type InvalidSymbolError struct {
	Symbol   rune
	Position int // 1-based
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid base %q at %d; allowed: A T G C", e.Symbol, e.Position)
}

func (e *InvalidSymbolError) Is(target error) bool { return target == ErrInvalidSymbol }

// TooLongError is returned when an Analyzer has a length cap and the input
// goes past it. The sequence is never truncated.
type TooLongError struct {
	Length int
	Max    int
}

func (e *TooLongError) Error() string {
	return fmt.Sprintf("sequence length %d exceeds limit of %d", e.Length, e.Max)
}

func (e *TooLongError) Is(target error) bool { return target == ErrSequenceTooLong }

// UnknownCodonError means the codon table is not exhaustive for the input.
// Validated input can never produce it.
type UnknownCodonError struct {
	Codon  string
	Offset int
}

func (e *UnknownCodonError) Error() string {
	return fmt.Sprintf("codon %q at offset %d not in codon table", e.Codon, e.Offset)
}

func (e *UnknownCodonError) Is(target error) bool { return target == ErrUnknownCodon }
