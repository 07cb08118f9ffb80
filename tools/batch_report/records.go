package batch_report

import (
	"errors"
	"io"
	"runtime"
	"sync"

	"dna_analyzer_go/analysis"
	common "dna_analyzer_go/utils"
)

// Reasons a record can be rejected, used as keys in Summary.Invalid
const (
	ReasonEmpty         = "empty"
	ReasonInvalidSymbol = "invalid_symbol"
	ReasonTooLong       = "too_long"
	ReasonOther         = "other"
)

type RecordResult struct {
	Index  int
	ID     string
	Result *analysis.Result
	Err    error
}

func (r RecordResult) Valid() bool { return r.Err == nil && r.Result != nil }

// Reason classifies a failed record. Valid records return "".
func (r RecordResult) Reason() string {
	switch {
	case r.Err == nil:
		return ""
	case errors.Is(r.Err, analysis.ErrEmptySequence):
		return ReasonEmpty
	case errors.Is(r.Err, analysis.ErrInvalidSymbol):
		return ReasonInvalidSymbol
	case errors.Is(r.Err, analysis.ErrSequenceTooLong):
		return ReasonTooLong
	default:
		return ReasonOther
	}
}

type fastaRecord struct {
	index int
	id    string
	seq   string
}

// CollectRecords streams every FASTA record from r through the analyzer with a
// worker pool and returns the results in file order.
func CollectRecords(r io.Reader, analyzer analysis.Analyzer) ([]RecordResult, error) {
	return collectWith(func(h common.FastaHandler) error {
		return common.StreamFastaReader(r, h, nil)
	}, analyzer)
}

// CollectFile is CollectRecords for a FASTA file path (plain or gzip).
func CollectFile(path string, analyzer analysis.Analyzer) ([]RecordResult, error) {
	return collectWith(func(h common.FastaHandler) error {
		return common.StreamFastaWithOpts(path, h, nil)
	}, analyzer)
}

func collectWith(stream func(common.FastaHandler) error, analyzer analysis.Analyzer) ([]RecordResult, error) {
	numWorkers := runtime.NumCPU()
	recordChan := make(chan fastaRecord, numWorkers*2)
	resultChan := make(chan RecordResult, numWorkers*2)

	var wg sync.WaitGroup

	// Worker pool
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rec := range recordChan {
				res, err := analyzer.Process(rec.seq)
				resultChan <- RecordResult{Index: rec.index, ID: rec.id, Result: res, Err: err}
			}
		}()
	}

	// Aggregate results
	var results []RecordResult
	done := make(chan struct{})
	go func() {
		for res := range resultChan {
			results = append(results, res)
		}
		close(done)
	}()

	// Feed records
	count := 0
	streamErr := stream(func(id, seq string, _ map[string]interface{}) error {
		recordChan <- fastaRecord{index: count, id: id, seq: seq}
		count++
		return nil
	})
	close(recordChan)
	wg.Wait()
	close(resultChan)
	<-done

	if streamErr != nil {
		return nil, streamErr
	}

	ordered := make([]RecordResult, len(results))
	for _, res := range results {
		ordered[res.Index] = res
	}
	return ordered, nil
}
