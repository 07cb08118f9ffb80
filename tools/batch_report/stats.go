package batch_report

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

type BatchStats struct {
	TotalRecords   int
	ValidRecords   int
	InvalidRecords int
	Invalid        map[string]int // rejected records by reason

	TotalBases   int
	MinLength    int
	MaxLength    int
	AvgLength    float64
	LengthStdDev float64
	MedianLength float64

	AvgGC    float64
	GCStdDev float64
	MedianGC float64
	MinGC    float64
	MaxGC    float64

	ProteinResidues int
	StopCodons      int
	StartingWithATG int
}

// Summarize aggregates per-record results into batch level statistics.
func Summarize(records []RecordResult) BatchStats {
	stats := BatchStats{
		TotalRecords: len(records),
		Invalid:      map[string]int{},
	}

	var lengths, gcValues []float64
	for _, rec := range records {
		if !rec.Valid() {
			stats.InvalidRecords++
			stats.Invalid[rec.Reason()]++
			continue
		}
		res := rec.Result
		stats.ValidRecords++
		stats.TotalBases += res.Length
		stats.ProteinResidues += res.ProteinLength
		lengths = append(lengths, float64(res.Length))
		gcValues = append(gcValues, res.GCContent)

		for _, ct := range res.Translation {
			if ct.AminoAcid.IsStop() {
				stats.StopCodons++
			}
		}
		if len(res.Translation) > 0 && res.Translation[0].Codon == "ATG" {
			stats.StartingWithATG++
		}
	}

	if len(lengths) == 0 {
		return stats
	}

	sort.Float64s(lengths)
	sort.Float64s(gcValues)

	stats.MinLength = int(lengths[0])
	stats.MaxLength = int(lengths[len(lengths)-1])
	stats.AvgLength = stat.Mean(lengths, nil)
	stats.MedianLength = stat.Quantile(0.5, stat.Empirical, lengths, nil)

	stats.AvgGC = stat.Mean(gcValues, nil)
	stats.MedianGC = stat.Quantile(0.5, stat.Empirical, gcValues, nil)
	stats.MinGC = gcValues[0]
	stats.MaxGC = gcValues[len(gcValues)-1]

	// StdDev of a single value is NaN
	if len(lengths) > 1 {
		stats.LengthStdDev = stat.StdDev(lengths, nil)
		stats.GCStdDev = stat.StdDev(gcValues, nil)
	}
	return stats
}

// GCValues returns the GC content of every valid record.
func GCValues(records []RecordResult) []float64 {
	var out []float64
	for _, rec := range records {
		if rec.Valid() {
			out = append(out, rec.Result.GCContent)
		}
	}
	return out
}

// LengthValues returns the length of every valid record.
func LengthValues(records []RecordResult) []float64 {
	var out []float64
	for _, rec := range records {
		if rec.Valid() {
			out = append(out, float64(rec.Result.Length))
		}
	}
	return out
}
