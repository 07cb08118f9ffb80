package common

import (
	"fmt"
	"os"

	"dna_analyzer_go/analysis"
)

// CheckFileReady stats path before it is read: it must be a regular,
// non-empty file no larger than maxBytes (when maxBytes > 0).
func CheckFileReady(path string, maxBytes int64) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to stat file: %v", analysis.ErrSourceUnavailable, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", analysis.ErrSourceUnavailable, path)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%w: %s is empty", analysis.ErrSourceUnavailable, path)
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit is %d", analysis.ErrSourceUnavailable, path, info.Size(), maxBytes)
	}
	return info, nil
}
