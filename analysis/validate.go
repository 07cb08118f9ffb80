package analysis

// Validate reports whether seq is a non-empty run of A, T, G and C only.
func Validate(seq string) bool {
	return Check(seq) == nil
}

// Check is Validate with a reason. It returns ErrEmptySequence for an empty
// string and an *InvalidSymbolError for the first character outside the
// DNA alphabet.
func Check(seq string) error {
	if seq == "" {
		return ErrEmptySequence
	}
	pos := 0
	for _, r := range seq {
		pos++
		switch r {
		case 'A', 'T', 'G', 'C':
		default:
			return &InvalidSymbolError{Symbol: r, Position: pos}
		}
	}
	return nil
}
