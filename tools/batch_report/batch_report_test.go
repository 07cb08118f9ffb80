package batch_report

import (
	"bytes"
	"compress/gzip"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dna_analyzer_go/analysis"
)

const sampleFasta = `>ok1 first
ATGCGT
>ok2
atg taa
>bad
ATGXXX
>empty
>ok3
GGCC
`

func collect(t *testing.T, fasta string, maxLen int) []RecordResult {
	t.Helper()
	records, err := CollectRecords(strings.NewReader(fasta), analysis.Analyzer{MaxLength: maxLen})
	require.NoError(t, err)
	return records
}

func TestCollectRecords_KeepsFileOrder(t *testing.T) {
	records := collect(t, sampleFasta, 0)
	require.Len(t, records, 5)

	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"ok1 first", "ok2", "bad", "empty", "ok3"}, ids)

	assert.True(t, records[0].Valid())
	assert.Equal(t, "MR", records[0].Result.Protein)
	assert.Equal(t, "M*", records[1].Result.Protein)
	assert.Equal(t, ReasonInvalidSymbol, records[2].Reason())
	assert.Equal(t, ReasonEmpty, records[3].Reason())
	assert.Equal(t, "", records[4].Reason())
}

func TestCollectFile_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.fa.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(sampleFasta))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	records, err := CollectFile(path, analysis.Analyzer{})
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, "ok3", records[4].ID)

	_, err = CollectFile(filepath.Join(t.TempDir(), "missing.fa"), analysis.Analyzer{})
	assert.Error(t, err)
}

func TestCollectRecords_MaxLength(t *testing.T) {
	records := collect(t, ">long\nATGCGTATGC\n>short\nATG\n", 5)
	require.Len(t, records, 2)
	assert.Equal(t, ReasonTooLong, records[0].Reason())
	assert.True(t, records[1].Valid())
}

func TestSummarize(t *testing.T) {
	stats := Summarize(collect(t, sampleFasta, 0))

	assert.Equal(t, 5, stats.TotalRecords)
	assert.Equal(t, 3, stats.ValidRecords)
	assert.Equal(t, 2, stats.InvalidRecords)
	assert.Equal(t, map[string]int{ReasonEmpty: 1, ReasonInvalidSymbol: 1}, stats.Invalid)

	assert.Equal(t, 16, stats.TotalBases)
	assert.Equal(t, 4, stats.MinLength)
	assert.Equal(t, 6, stats.MaxLength)
	assert.InDelta(t, 16.0/3.0, stats.AvgLength, 1e-9)
	assert.Equal(t, 6.0, stats.MedianLength)

	// GC values are 50, 16.67 and 100
	assert.InDelta(t, (50+16.67+100)/3, stats.AvgGC, 1e-9)
	assert.Equal(t, 50.0, stats.MedianGC)
	assert.Equal(t, 16.67, stats.MinGC)
	assert.Equal(t, 100.0, stats.MaxGC)

	assert.Equal(t, 5, stats.ProteinResidues)
	assert.Equal(t, 1, stats.StopCodons)
	assert.Equal(t, 2, stats.StartingWithATG)
}

func TestSummarize_SingleAndNone(t *testing.T) {
	stats := Summarize(collect(t, ">a\nGGAA\n", 0))
	assert.Equal(t, 0.0, stats.LengthStdDev)
	assert.Equal(t, 0.0, stats.GCStdDev)
	assert.Equal(t, 50.0, stats.AvgGC)

	stats = Summarize(collect(t, ">a\nXXXX\n", 0))
	assert.Equal(t, 0, stats.ValidRecords)
	assert.Equal(t, 0.0, stats.AvgGC)
}

func TestWriteSummaryCSV(t *testing.T) {
	stats := Summarize(collect(t, sampleFasta, 0))

	var buf bytes.Buffer
	require.NoError(t, WriteSummaryCSV(&buf, stats))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, len(rows[0]), len(rows[1]))

	row := map[string]string{}
	for i, h := range rows[0] {
		row[h] = rows[1][i]
	}
	assert.Equal(t, "5", row["TotalRecords"])
	assert.Equal(t, "1", row["Invalid_empty"])
	assert.Equal(t, "1", row["Invalid_invalid_symbol"])
	assert.Equal(t, "50.00", row["MedianGC"])
}

func TestWritePerRecordCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePerRecordCSV(&buf, collect(t, sampleFasta, 0)))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"ok1 first", "true", "", "6", "50.00", "1", "2", "2", "1", "MR", "ACGCAT"}, rows[1])
	assert.Equal(t, "bad", rows[3][0])
	assert.Equal(t, "false", rows[3][1])
	assert.Equal(t, ReasonInvalidSymbol, rows[3][2])
}

func TestPlots(t *testing.T) {
	records := collect(t, sampleFasta, 0)

	svg, err := GenerateGCContentPlot(GCValues(records))
	require.NoError(t, err)
	assert.Contains(t, svg, "<svg")

	svg, err = GenerateLengthPlot(LengthValues(records))
	require.NoError(t, err)
	assert.Contains(t, svg, "<svg")

	_, err = GenerateGCContentPlot(nil)
	assert.ErrorIs(t, err, errNoData)
}

func TestWriteHTMLReport(t *testing.T) {
	records := collect(t, ">x<y>\nATGCGT\n>bad\nNNN\n", 0)
	stats := Summarize(records)

	var buf bytes.Buffer
	require.NoError(t, WriteHTMLReport(&buf, "Report", stats, records, "", "<svg>gc</svg>"))

	page := buf.String()
	assert.Contains(t, page, "<title>Report</title>")
	assert.Contains(t, page, graphUnavailable)
	assert.Contains(t, page, "<svg>gc</svg>")
	assert.Contains(t, page, "x&lt;y&gt;")
	assert.Contains(t, page, "Rejected (invalid_symbol)")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, "in.fa", Summarize(collect(t, sampleFasta, 0)))

	out := buf.String()
	assert.Contains(t, out, "Batch summary for in.fa")
	assert.Contains(t, out, "5 (3 valid, 2 invalid)")
	assert.Contains(t, out, "invalid_symbol:")
}
