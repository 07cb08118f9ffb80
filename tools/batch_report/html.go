package batch_report

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strings"
)

const graphUnavailable = "<p>Graph unavailable</p>"

func WriteHTMLReport(w io.Writer, title string, stats BatchStats, records []RecordResult, svgLength, svgGC string) error {
	if svgLength == "" {
		svgLength = graphUnavailable
	}
	if svgGC == "" {
		svgGC = graphUnavailable
	}

	var invalidRows strings.Builder
	reasons := make([]string, 0, len(stats.Invalid))
	for reason := range stats.Invalid {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		fmt.Fprintf(&invalidRows, "\t\t<tr><td>Rejected (%s)</td><td>%d</td></tr>\n", reason, stats.Invalid[reason])
	}

	var recordRows strings.Builder
	for _, rec := range records {
		if !rec.Valid() {
			fmt.Fprintf(&recordRows, "\t\t<tr class=\"bad\"><td>%s</td><td colspan=\"3\">%s</td></tr>\n",
				html.EscapeString(rec.ID), html.EscapeString(rec.Reason()))
			continue
		}
		fmt.Fprintf(&recordRows, "\t\t<tr><td>%s</td><td>%d</td><td>%.2f%%</td><td>%s</td></tr>\n",
			html.EscapeString(rec.ID), rec.Result.Length, rec.Result.GCContent, truncate(rec.Result.Protein, 60))
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<title>%s</title>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; padding: 20px; background-color: #f9f9f9; }
		h1 { color: #333; }
		table { border-collapse: collapse; margin-top: 20px; }
		th, td { padding: 8px 12px; border: 1px solid #ccc; text-align: left; }
		th { background-color: #eee; }
		tr.bad td { color: #a00; }
	</style>
</head>
<body>
	<h1>%s</h1>
	<table>
		<tr><th>Metric</th><th>Value</th></tr>
		<tr><td>Total Records</td><td>%d</td></tr>
		<tr><td>Valid Records</td><td>%d</td></tr>
		<tr><td>Invalid Records</td><td>%d</td></tr>
%s		<tr><td>Total Bases</td><td>%d</td></tr>
		<tr><td>Min Length</td><td>%d</td></tr>
		<tr><td>Max Length</td><td>%d</td></tr>
		<tr><td>Average Length</td><td>%.2f</td></tr>
		<tr><td>Length StdDev</td><td>%.2f</td></tr>
		<tr><td>Median Length</td><td>%.2f</td></tr>
		<tr><td>Average GC Content</td><td>%.2f%%</td></tr>
		<tr><td>GC Content StdDev</td><td>%.2f</td></tr>
		<tr><td>Median GC Content</td><td>%.2f%%</td></tr>
		<tr><td>Protein Residues</td><td>%d</td></tr>
		<tr><td>Stop Codons</td><td>%d</td></tr>
		<tr><td>Records Starting With ATG</td><td>%d</td></tr>
	</table>
	<h2>Sequence Length Distribution</h2>
	<div>%s</div>
	<h2>GC Content Distribution</h2>
	<div>%s</div>
	<h2>Records</h2>
	<table>
		<tr><th>ID</th><th>Length</th><th>GC</th><th>Protein</th></tr>
%s	</table>
</body>
</html>
`,
		html.EscapeString(title),
		html.EscapeString(title),
		stats.TotalRecords,
		stats.ValidRecords,
		stats.InvalidRecords,
		invalidRows.String(),
		stats.TotalBases,
		stats.MinLength,
		stats.MaxLength,
		stats.AvgLength,
		stats.LengthStdDev,
		stats.MedianLength,
		stats.AvgGC,
		stats.GCStdDev,
		stats.MedianGC,
		stats.ProteinResidues,
		stats.StopCodons,
		stats.StartingWithATG,
		svgLength,
		svgGC,
		recordRows.String(),
	)

	_, err := io.WriteString(w, page)
	return err
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
