package wordlist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"
)

// DefaultPaths are the conventional wordlist locations, tried in order.
var DefaultPaths = []string{
	"src/wordlist/sample_new_words.csv",
	"wordlist/sample_new_words.csv",
	"sample_new_words.csv",
}

// ErrNotFound reports that no wordlist exists at any candidate path.
var ErrNotFound = errors.New("wordlist not found at any candidate path")

// Load returns the ordered word sequence and the path it was read from.
// When override is non-empty it is the only path tried; otherwise the
// DefaultPaths are tried in order and the first existing file wins.
func Load(override string) ([]string, string, error) {
	paths := DefaultPaths
	if override != "" {
		paths = []string{override}
	}

	for _, path := range paths {
		words, err := ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("read wordlist %s: %w", path, err)
		}
		return words, path, nil
	}

	return nil, "", ErrNotFound
}

// ReadFile reads the `word` column of a UTF-8 CSV file. A leading byte-order
// marker is tolerated. Duplicate words are kept; order is preserved.
func ReadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(data), "\ufeff")))
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("empty file")
	}

	col := -1
	for i, name := range rows[0] {
		if strings.TrimSpace(name) == "word" {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, errors.New("missing word column")
	}

	var words []string
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		if w := strings.TrimSpace(row[col]); w != "" {
			words = append(words, w)
		}
	}
	return words, nil
}
