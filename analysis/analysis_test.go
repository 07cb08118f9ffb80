package analysis

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dna_analyzer_go/tools/seq_generator"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{"mixed case and spaces", " atg  cGt\n", "ATGCGT"},
		{"carriage returns", "AT\r\nGC\r\n", "ATGC"},
		{"tabs", "a\tt\tg", "ATG"},
		{"empty", "", ""},
		{"only whitespace", " \n\r\t ", ""},
		{"non dna kept", "atgx 12", "ATGX12"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{" atg  cGt\n", "xyz \r\n abc", "", "ATGC", "\tn n\n"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestValidate(t *testing.T) {
	assert.True(t, Validate("ATGCGT"))
	assert.False(t, Validate("ATGCGX"))
	assert.False(t, Validate(""))
	assert.False(t, Validate("atgc"), "lowercase must be normalized first")
	assert.False(t, Validate("ATGN"), "ambiguity codes are rejected")
	assert.False(t, Validate("AUGC"), "RNA is rejected")
}

func TestCheck_Reasons(t *testing.T) {
	assert.ErrorIs(t, Check(""), ErrEmptySequence)

	err := Check("ATGCGX")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSymbol)
	assert.False(t, errors.Is(err, ErrEmptySequence))

	var symErr *InvalidSymbolError
	require.True(t, errors.As(err, &symErr))
	assert.Equal(t, 'X', symErr.Symbol)
	assert.Equal(t, 6, symErr.Position)

	assert.NoError(t, Check("ATGC"))
}

func TestGCContent(t *testing.T) {
	testCases := []struct {
		seq  string
		want float64
	}{
		{"ATGCGT", 50.0},
		{"AT", 0.0},
		{"GGCC", 100.0},
		{"", 0.0},
		{"GAA", 33.33},
		{"GGA", 66.67},
		{"GAAAAAAA", 12.5},
		// 1/32 = 3.125 and 3/32 = 9.375 sit on a rounding midpoint; half rounds away from zero
		{"G" + strings.Repeat("A", 31), 3.13},
		{"GGG" + strings.Repeat("A", 29), 9.38},
		// 1/64 = 1.5625 is below the midpoint and rounds down
		{"C" + strings.Repeat("T", 63), 1.56},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, GCContent(tc.seq), "GCContent(%q)", tc.seq)
	}
}

func TestLengthAndCounts(t *testing.T) {
	assert.Equal(t, 0, Length(""))
	assert.Equal(t, 6, Length("ATGCGT"))
	assert.Equal(t, BaseCounts{A: 1, T: 2, G: 2, C: 1}, CountBases("ATGCGT"))
}

func TestCodonTable_Exhaustive(t *testing.T) {
	bases := "ATGC"
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				codon := string([]byte{bases[i], bases[j], bases[k]})
				aa, ok := LookupCodon(codon)
				require.True(t, ok, "codon %s missing", codon)
				assert.Len(t, aa.Symbol, 1, "codon %s", codon)
				if !aa.IsStop() {
					assert.Len(t, aa.Abbrev, 3, "codon %s", codon)
				}
				assert.NotEmpty(t, aa.Name, "codon %s", codon)
			}
		}
	}
	assert.Len(t, Codons(), 64)
}

func TestCodonTable_Stops(t *testing.T) {
	var stops []string
	for _, c := range Codons() {
		aa, _ := LookupCodon(c)
		if aa.IsStop() {
			stops = append(stops, c)
		}
	}
	assert.Equal(t, []string{"TAA", "TAG", "TGA"}, stops)
	assert.Equal(t, "*", Stop.Symbol)
	assert.True(t, IsStartCodon("ATG"))
	assert.False(t, IsStartCodon("GTG"))
}

func TestTranslate(t *testing.T) {
	tr, err := Translate("ATGCGT")
	require.NoError(t, err)
	require.Len(t, tr, 2)
	assert.Equal(t, "ATG", tr[0].Codon)
	assert.Equal(t, "Methionine", tr[0].AminoAcid.Name)
	assert.Equal(t, "M", tr[0].AminoAcid.Symbol)
	assert.Equal(t, "CGT", tr[1].Codon)
	assert.Equal(t, "Arginine", tr[1].AminoAcid.Name)
	assert.Equal(t, "MR", ProteinString(tr))
}

func TestTranslate_TrailingBasesDropped(t *testing.T) {
	tr, err := Translate("ATGCG")
	require.NoError(t, err)
	assert.Len(t, tr, 1)

	tr, err = Translate("AT")
	require.NoError(t, err)
	assert.Empty(t, tr)
	assert.Equal(t, "", ProteinString(tr))
}

func TestTranslate_UnknownCodon(t *testing.T) {
	_, err := Translate("ATGNNN")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCodon)

	var ucErr *UnknownCodonError
	require.True(t, errors.As(err, &ucErr))
	assert.Equal(t, "NNN", ucErr.Codon)
	assert.Equal(t, 3, ucErr.Offset)
}

func TestReverseComplement(t *testing.T) {
	assert.Equal(t, "GGCCAATT", ReverseComplement("AATTGGCC"))
	assert.Equal(t, "ACGCAT", ReverseComplement("ATGCGT"))
	assert.Equal(t, "", ReverseComplement(""))
	assert.Equal(t, "T", ReverseComplement("A"))
}

func TestComplementPairs(t *testing.T) {
	pairs := ComplementPairs("ATG")
	assert.Equal(t, []BasePair{
		{Original: "A", Complement: "T"},
		{Original: "T", Complement: "A"},
		{Original: "G", Complement: "C"},
	}, pairs)

	rev := ReversedComplementPairs(pairs)
	assert.Equal(t, []BasePair{
		{Original: "G", Complement: "C"},
		{Original: "T", Complement: "A"},
		{Original: "A", Complement: "T"},
	}, rev)
	assert.Equal(t, "A", pairs[0].Original, "input must not be reordered")
}

func TestAnalyze_Examples(t *testing.T) {
	res, err := Analyze("ATGCGT")
	require.NoError(t, err)
	assert.Equal(t, 6, res.Length)
	assert.Equal(t, 50.0, res.GCContent)
	assert.Equal(t, "MR", res.Protein)
	assert.Equal(t, 2, res.ProteinLength)
	assert.Equal(t, "ACGCAT", res.ReverseComplement)
	require.Len(t, res.Translation, 2)
	assert.Equal(t, "Methionine", res.Translation[0].AminoAcid.Name)
	assert.Equal(t, "Arginine", res.Translation[1].AminoAcid.Name)

	res, err = Analyze("ATGTAA")
	require.NoError(t, err)
	assert.Equal(t, "M*", res.Protein)
	assert.Equal(t, Stop, res.Translation[1].AminoAcid)

	res, err = Analyze("AT")
	require.NoError(t, err)
	assert.Empty(t, res.Translation)
	assert.Equal(t, 2, res.Length)
	assert.Equal(t, 0.0, res.GCContent)
}

func TestAnalyze_RejectsInvalidInput(t *testing.T) {
	_, err := Analyze("")
	assert.ErrorIs(t, err, ErrEmptySequence)

	_, err = Analyze("ATGCGX")
	assert.ErrorIs(t, err, ErrInvalidSymbol)

	_, err = Analyze("atgc")
	assert.ErrorIs(t, err, ErrInvalidSymbol)
}

func TestAnalyzer_MaxLength(t *testing.T) {
	a := Analyzer{MaxLength: 5}

	_, err := a.Analyze("ATGCGT")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSequenceTooLong)
	var tl *TooLongError
	require.True(t, errors.As(err, &tl))
	assert.Equal(t, 6, tl.Length)
	assert.Equal(t, 5, tl.Max)

	res, err := a.Analyze("ATGCG")
	require.NoError(t, err)
	assert.Equal(t, 5, res.Length)
}

func TestProcess_NormalizesFirst(t *testing.T) {
	res, err := Process(" atg  cGt\n")
	require.NoError(t, err)
	assert.Equal(t, "ATGCGT", res.Sequence)

	_, err = Process(" \n ")
	assert.ErrorIs(t, err, ErrEmptySequence)
}

func TestProperties_RandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for n := 0; n < 200; n++ {
		seq := seq_generator.GenerateDNA(rng, 1+rng.Intn(300), rng.Float64())

		assert.Equal(t, seq, ReverseComplement(ReverseComplement(seq)))

		res, err := Analyze(seq)
		require.NoError(t, err)
		assert.Len(t, res.ComplementPairs, len(seq))
		assert.Equal(t, ReversedComplementPairs(res.ComplementPairs), res.ReversedComplementPairs)
		assert.Len(t, res.Translation, len(seq)/3)
		assert.Len(t, res.Protein, len(seq)/3)
		assert.GreaterOrEqual(t, res.GCContent, 0.0)
		assert.LessOrEqual(t, res.GCContent, 100.0)
		assert.Equal(t, ProteinString(res.Translation), res.Protein)

		var fromPairs strings.Builder
		for _, p := range res.ReversedComplementPairs {
			fromPairs.WriteString(p.Complement)
		}
		assert.Equal(t, res.ReverseComplement, fromPairs.String())
	}
}

func TestAnalyze_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := Analyze("ATGCGTTAA")
			if assert.NoError(t, err) {
				assert.Equal(t, "MR*", res.Protein)
			}
		}()
	}
	wg.Wait()
}
