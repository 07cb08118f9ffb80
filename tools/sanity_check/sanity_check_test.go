package sanity_check

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"dna_analyzer_go/analysis"
)

func TestCheck(t *testing.T) {
	assert.NoError(t, Check())
}

func TestCheckKnownAnswer_DetectsFailures(t *testing.T) {
	broken := errors.New("boom")
	err := checkKnownAnswer(func(string) (*analysis.Result, error) { return nil, broken })
	assert.ErrorIs(t, err, broken)

	err = checkKnownAnswer(func(string) (*analysis.Result, error) {
		return &analysis.Result{Protein: "MX", ReverseComplement: "ACGCAT", GCContent: 50}, nil
	})
	assert.ErrorContains(t, err, "unexpected analysis")
}
