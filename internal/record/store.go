package record

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// header is the flat table schema shared by success and error rows. Error
// rows populate the error column and leave the verdict columns empty.
var header = []string{"word", "reason", "near_words", "category", "confidence", "is_boundary", "raw_response", "error"}

// Store writes per-batch artifacts and reads them back for aggregation.
type Store struct {
	ResultsDir string
	ErrorsDir  string
}

// NewStore returns a store rooted at the given artifact directories.
func NewStore(resultsDir, errorsDir string) *Store {
	return &Store{ResultsDir: resultsDir, ErrorsDir: errorsDir}
}

// EnsureDirs creates the artifact directories if they do not exist.
func (s *Store) EnsureDirs() error {
	for _, dir := range []string{s.ResultsDir, s.ErrorsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// ResultPath returns the per-batch result artifact path.
func (s *Store) ResultPath(batchNum int) string {
	return filepath.Join(s.ResultsDir, fmt.Sprintf("batch_%d.csv", batchNum))
}

// ErrorPath returns the per-batch error artifact path.
func (s *Store) ErrorPath(batchNum int) string {
	return filepath.Join(s.ErrorsDir, fmt.Sprintf("batch_%d_errors.json", batchNum))
}

// WriteResults writes all records of one batch to its result CSV and returns
// the path written.
func (s *Store) WriteResults(batchNum int, recs []Record) (string, error) {
	path := s.ResultPath(batchNum)
	if err := WriteCSV(path, recs); err != nil {
		return "", err
	}
	return path, nil
}

// errorEntry is the JSON shape of one error record.
type errorEntry struct {
	Word        string `json:"word"`
	Error       string `json:"error"`
	RawResponse string `json:"raw_response,omitempty"`
}

// WriteErrors writes the error records of one batch as indented JSON and
// returns the path written.
func (s *Store) WriteErrors(batchNum int, recs []Record) (string, error) {
	entries := make([]errorEntry, 0, len(recs))
	for _, r := range recs {
		entries = append(entries, errorEntry{Word: r.Word, Error: r.Error, RawResponse: r.Raw})
	}

	path := s.ErrorPath(batchNum)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// ReadAll loads every record from every per-batch result CSV, in filename
// order. Used only by the aggregator, which always does a full re-scan.
func (s *Store) ReadAll() ([]Record, error) {
	entries, err := os.ReadDir(s.ResultsDir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.ResultsDir, err)
	}

	var all []Record
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		recs, err := ReadCSV(filepath.Join(s.ResultsDir, e.Name()))
		if err != nil {
			return nil, err
		}
		all = append(all, recs...)
	}
	return all, nil
}

// WriteCSV writes records as a UTF-8 CSV with a byte-order marker, so the
// artifacts open cleanly in spreadsheet tools that sniff encodings.
func WriteCSV(path string, recs []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString("\ufeff"); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	for _, r := range recs {
		row := []string{r.Word, "", "", "", "", "", r.Raw, r.Error}
		if r.Class != nil {
			row[1] = r.Class.Reason
			row[2] = r.Class.NearWords
			row[3] = r.Class.Category
			row[4] = strconv.Itoa(r.Class.Confidence)
			row[5] = r.Class.IsBoundary
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// ReadCSV reads records back from a result CSV written by WriteCSV.
func ReadCSV(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(data), "\ufeff")))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[name] = i
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	recs := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := Record{
			Word:  field(row, "word"),
			Error: field(row, "error"),
			Raw:   field(row, "raw_response"),
		}
		if rec.Error == "" {
			conf, _ := strconv.Atoi(field(row, "confidence"))
			rec.Class = &Classification{
				Reason:     field(row, "reason"),
				NearWords:  field(row, "near_words"),
				Category:   field(row, "category"),
				Confidence: conf,
				IsBoundary: field(row, "is_boundary"),
			}
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
