package common

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dna_analyzer_go/analysis"
)

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestReadSequence_Plain(t *testing.T) {
	got, err := ReadSequence(strings.NewReader(" atg cgt\n"), 0)
	require.NoError(t, err)
	assert.Equal(t, " atg cgt\n", got)
	assert.Equal(t, "ATGCGT", analysis.Normalize(got))
}

func TestReadSequence_SkipsHeader(t *testing.T) {
	got, err := ReadSequence(strings.NewReader(">sample 1\nATG\nCGT\n"), 0)
	require.NoError(t, err)
	assert.Equal(t, "ATGCGT", analysis.Normalize(got))
}

func TestReadSequence_MultipleRecordsRejected(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"two records", ">rec1\nATGC\n>rec2\nGTAA\n"},
		{"sequence before header", "ATGC\n>rec1\nGTAA\n"},
		{"second header empty", ">rec1\nATGC\n>\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadSequence(strings.NewReader(tc.input), 0)
			require.Error(t, err)
			assert.ErrorIs(t, err, analysis.ErrSourceUnavailable)
			assert.ErrorIs(t, err, ErrMultipleRecords)
			assert.Contains(t, err.Error(), "batch")
		})
	}

	_, err := ReadSequence(bytes.NewReader(gzipBytes(t, ">a\nATG\n>b\nCGT\n")), 0)
	assert.ErrorIs(t, err, ErrMultipleRecords)
}

func TestReadSequence_LeadingBlankLinesBeforeHeader(t *testing.T) {
	got, err := ReadSequence(strings.NewReader("\n  \n>only\nATG\n"), 0)
	require.NoError(t, err)
	assert.Equal(t, "ATG", analysis.Normalize(got))
}

func TestReadSequence_Gzip(t *testing.T) {
	got, err := ReadSequence(bytes.NewReader(gzipBytes(t, "ATGTAA\n")), 0)
	require.NoError(t, err)
	assert.Equal(t, "ATGTAA", analysis.Normalize(got))
}

func TestReadSequence_TooLarge(t *testing.T) {
	_, err := ReadSequence(strings.NewReader("ATGCGTATGC"), 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, analysis.ErrSourceUnavailable)

	got, err := ReadSequence(strings.NewReader("ATGCG"), 5)
	require.NoError(t, err)
	assert.Equal(t, "ATGCG", got)
}

func TestReadSequence_BrokenGzip(t *testing.T) {
	_, err := ReadSequence(bytes.NewReader([]byte{0x1F, 0x8B, 0x00}), 0)
	assert.ErrorIs(t, err, analysis.ErrSourceUnavailable)
}

func TestReadSequenceFile_Missing(t *testing.T) {
	_, err := ReadSequenceFile(filepath.Join(t.TempDir(), "nope.txt"), 0)
	assert.ErrorIs(t, err, analysis.ErrSourceUnavailable)
}

func TestReadSequenceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.txt")
	require.NoError(t, os.WriteFile(path, []byte("aattggcc\r\n"), 0644))

	got, err := ReadSequenceFile(path, 1024)
	require.NoError(t, err)
	assert.Equal(t, "AATTGGCC", analysis.Normalize(got))
}

func TestStreamFastaReader(t *testing.T) {
	input := ">seq1 first\nATG\ncgt\n>seq2\n\n>seq3\nTTT\n"
	type rec struct{ id, seq string }
	var got []rec

	err := StreamFastaReader(strings.NewReader(input), func(id, seq string, opts map[string]interface{}) error {
		got = append(got, rec{id, seq})
		return nil
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []rec{{"seq1 first", "ATGCGT"}, {"seq2", ""}, {"seq3", "TTT"}}, got)
}

func TestStreamFastaWithOpts_GzipFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.fa.gz")
	require.NoError(t, os.WriteFile(path, gzipBytes(t, ">a\nATG\n>b\nGGG\n"), 0644))

	count := 0
	err := StreamFastaWithOpts(path, func(id, seq string, opts map[string]interface{}) error {
		count++
		assert.Equal(t, "x", opts["tag"])
		return nil
	}, map[string]interface{}{"tag": "x"})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestStreamFastaReader_HandlerError(t *testing.T) {
	err := StreamFastaReader(strings.NewReader(">a\nATG\n"), func(id, seq string, opts map[string]interface{}) error {
		return fmt.Errorf("boom")
	}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler error (a)")
}

func TestCheckFileReady(t *testing.T) {
	dir := t.TempDir()
	full := filepath.Join(dir, "full.txt")
	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(full, []byte("ATGC"), 0644))
	require.NoError(t, os.WriteFile(empty, nil, 0644))

	info, err := CheckFileReady(full, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), info.Size())

	_, err = CheckFileReady(empty, 0)
	assert.ErrorIs(t, err, analysis.ErrSourceUnavailable)

	_, err = CheckFileReady(full, 2)
	assert.ErrorIs(t, err, analysis.ErrSourceUnavailable)

	_, err = CheckFileReady(dir, 0)
	assert.ErrorIs(t, err, analysis.ErrSourceUnavailable)
}
