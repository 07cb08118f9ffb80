package benchmark

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunTo(t *testing.T) {
	var buf bytes.Buffer
	called := false
	RunTo(&buf, "dna_analyzer analyze -seq ATG", func() { called = true })

	assert.True(t, called)
	out := buf.String()
	assert.Contains(t, out, "[Benchmark] Running: dna_analyzer analyze -seq ATG")
	assert.Contains(t, out, "[Benchmark] Time Elapsed:")
	assert.Contains(t, out, "[Benchmark] CPU Cores:")
}
