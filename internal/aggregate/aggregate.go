// Package aggregate merges all per-batch result artifacts into one dataset.
package aggregate

import (
	"neoword/internal/record"
)

// Summary reports the merged dataset and its counts. A record counts as an
// error when its error column is non-empty.
type Summary struct {
	Filename string
	Total    int
	Success  int
	Errors   int
}

// Run re-scans every per-batch result artifact, writes the combined CSV to
// outPath, and returns the counts. Always a full re-scan; there is no
// incremental aggregation.
func Run(store *record.Store, outPath string) (*Summary, error) {
	recs, err := store.ReadAll()
	if err != nil {
		return nil, err
	}

	if err := record.WriteCSV(outPath, recs); err != nil {
		return nil, err
	}

	success, errCount := record.Count(recs)
	return &Summary{
		Filename: outPath,
		Total:    len(recs),
		Success:  success,
		Errors:   errCount,
	}, nil
}
