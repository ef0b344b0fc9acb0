// Package parse turns a raw model reply into one record per word.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"neoword/internal/record"
)

var errBadShape = errors.New("响应格式不符合预期")

// snippetLimit bounds the reply excerpt attached to synthesized records.
const snippetLimit = 200

// Parse splits reply into blank-line-separated blocks and produces exactly
// one record per block, then synthesizes an error record for every batch
// word no block covered. Blocks attach to words by position: block i is
// assumed to answer batch[i]. A reply that reorders words without leaving a
// structural gap will mis-attribute verdicts; that positional contract is
// inherent to the reply format.
//
// Guarantees: len(result) >= len(batch); every word in batch appears; one
// malformed block never blocks its siblings.
func Parse(reply string, batch []string) []record.Record {
	blocks := strings.Split(strings.TrimSpace(reply), "\n\n")

	recs := make([]record.Record, 0, len(batch))
	for i, block := range blocks {
		block = strings.TrimSpace(block)
		word := wordAt(batch, i)

		cls, err := parseBlock(block)
		if err != nil {
			recs = append(recs, record.Failure(word, "解析错误: "+err.Error(), block))
			continue
		}
		recs = append(recs, record.Success(word, *cls, block))
	}

	// Words the reply skipped entirely get a synthesized error carrying a
	// snippet of the full reply for context.
	covered := make(map[string]bool, len(recs))
	for _, r := range recs {
		covered[r.Word] = true
	}
	for _, w := range batch {
		if !covered[w] {
			recs = append(recs, record.Failure(w, "未在响应中找到对应结果", snippet(reply)))
		}
	}

	return recs
}

// parseBlock validates the six-line shape and extracts the verdict fields.
func parseBlock(block string) (*record.Classification, error) {
	lines := strings.Split(block, "\n")
	if err := checkShape(lines); err != nil {
		return nil, err
	}

	confidence, err := strconv.Atoi(lines[4])
	if err != nil {
		return nil, errBadShape
	}

	return &record.Classification{
		Reason:     lines[1],
		NearWords:  lines[2],
		Category:   lines[3],
		Confidence: confidence,
		IsBoundary: lines[5],
	}, nil
}

// checkShape is the acceptance rule for one reply block: three non-empty
// lines, a line that is exactly A, B or C, a line of digits, and a line
// starting with 是 or 否. Anything else is rejected wholesale; the caller
// isolates the rejection to the block's own position.
func checkShape(lines []string) error {
	if len(lines) < 6 {
		return errBadShape
	}
	for _, l := range lines[:3] {
		if l == "" {
			return errBadShape
		}
	}
	if lines[3] != "A" && lines[3] != "B" && lines[3] != "C" {
		return errBadShape
	}
	if !allDigits(lines[4]) {
		return errBadShape
	}
	if !strings.HasPrefix(lines[5], "是") && !strings.HasPrefix(lines[5], "否") {
		return errBadShape
	}
	return nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func wordAt(batch []string, i int) string {
	if i < len(batch) {
		return batch[i]
	}
	return fmt.Sprintf("UNKNOWN_%d", i)
}

func snippet(reply string) string {
	runes := []rune(reply)
	if len(runes) <= snippetLimit {
		return reply
	}
	return string(runes[:snippetLimit]) + "..."
}
