package analysis

// Result is everything derived from one validated sequence.
type Result struct {
	Sequence                string             `json:"sequence" msgpack:"sequence"`
	Length                  int                `json:"length" msgpack:"length"`
	GCContent               float64            `json:"gc_content" msgpack:"gc_content"`
	Bases                   BaseCounts         `json:"bases" msgpack:"bases"`
	Translation             []CodonTranslation `json:"translation" msgpack:"translation"`
	Protein                 string             `json:"protein" msgpack:"protein"`
	ProteinLength           int                `json:"protein_length" msgpack:"protein_length"`
	ReverseComplement       string             `json:"reverse_complement" msgpack:"reverse_complement"`
	ComplementPairs         []BasePair         `json:"complement_pairs" msgpack:"complement_pairs"`
	ReversedComplementPairs []BasePair         `json:"reversed_complement_pairs" msgpack:"reversed_complement_pairs"`
}

// Analyzer runs the pipeline. A positive MaxLength rejects longer input
// with a *TooLongError; zero means no limit.
type Analyzer struct {
	MaxLength int
}

// Analyze checks seq and derives a Result from it. seq must already be
// normalized; it is rejected, not repaired, otherwise.
func (a Analyzer) Analyze(seq string) (*Result, error) {
	if err := Check(seq); err != nil {
		return nil, err
	}
	if a.MaxLength > 0 && len(seq) > a.MaxLength {
		return nil, &TooLongError{Length: len(seq), Max: a.MaxLength}
	}

	tr, err := Translate(seq)
	if err != nil {
		return nil, err
	}
	pairs := ComplementPairs(seq)

	return &Result{
		Sequence:                seq,
		Length:                  Length(seq),
		GCContent:               GCContent(seq),
		Bases:                   CountBases(seq),
		Translation:             tr,
		Protein:                 ProteinString(tr),
		ProteinLength:           len(tr),
		ReverseComplement:       ReverseComplement(seq),
		ComplementPairs:         pairs,
		ReversedComplementPairs: ReversedComplementPairs(pairs),
	}, nil
}

// Process normalizes raw text and analyzes it.
func (a Analyzer) Process(raw string) (*Result, error) {
	return a.Analyze(Normalize(raw))
}

// Analyze runs an Analyzer with no length limit.
func Analyze(seq string) (*Result, error) {
	return Analyzer{}.Analyze(seq)
}

// Process normalizes and analyzes raw with no length limit.
func Process(raw string) (*Result, error) {
	return Analyzer{}.Process(raw)
}
