package batch_report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// WriteSummaryCSV writes one header row and one value row
func WriteSummaryCSV(w io.Writer, stats BatchStats) error {
	writer := csv.NewWriter(w)

	headers := []string{
		"TotalRecords", "ValidRecords", "InvalidRecords", "TotalBases",
		"MinLength", "MaxLength", "AvgLength", "LengthStdDev", "MedianLength",
		"AvgGC", "GCStdDev", "MedianGC", "MinGC", "MaxGC",
		"ProteinResidues", "StopCodons", "StartingWithATG",
	}
	values := []string{
		strconv.Itoa(stats.TotalRecords),
		strconv.Itoa(stats.ValidRecords),
		strconv.Itoa(stats.InvalidRecords),
		strconv.Itoa(stats.TotalBases),
		strconv.Itoa(stats.MinLength),
		strconv.Itoa(stats.MaxLength),
		fmt.Sprintf("%.2f", stats.AvgLength),
		fmt.Sprintf("%.2f", stats.LengthStdDev),
		fmt.Sprintf("%.2f", stats.MedianLength),
		fmt.Sprintf("%.2f", stats.AvgGC),
		fmt.Sprintf("%.2f", stats.GCStdDev),
		fmt.Sprintf("%.2f", stats.MedianGC),
		fmt.Sprintf("%.2f", stats.MinGC),
		fmt.Sprintf("%.2f", stats.MaxGC),
		strconv.Itoa(stats.ProteinResidues),
		strconv.Itoa(stats.StopCodons),
		strconv.Itoa(stats.StartingWithATG),
	}

	reasons := make([]string, 0, len(stats.Invalid))
	for reason := range stats.Invalid {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		headers = append(headers, "Invalid_"+reason)
		values = append(values, strconv.Itoa(stats.Invalid[reason]))
	}

	if err := writer.Write(headers); err != nil {
		return err
	}
	if err := writer.Write(values); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

// WritePerRecordCSV writes one row per FASTA record, invalid ones included
func WritePerRecordCSV(w io.Writer, records []RecordResult) error {
	writer := csv.NewWriter(w)

	headers := []string{
		"RecordID", "Valid", "Reason", "Length", "GCContent",
		"A", "T", "G", "C", "Protein", "ReverseComplement",
	}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, rec := range records {
		row := []string{rec.ID, strconv.FormatBool(rec.Valid()), rec.Reason()}
		if rec.Valid() {
			res := rec.Result
			row = append(row,
				strconv.Itoa(res.Length),
				fmt.Sprintf("%.2f", res.GCContent),
				strconv.Itoa(res.Bases.A),
				strconv.Itoa(res.Bases.T),
				strconv.Itoa(res.Bases.G),
				strconv.Itoa(res.Bases.C),
				res.Protein,
				res.ReverseComplement,
			)
		} else {
			row = append(row, "", "", "", "", "", "", "", "")
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
