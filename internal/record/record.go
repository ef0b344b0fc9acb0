// Package record holds the per-word result model and the on-disk artifacts:
// per-batch result CSVs, per-batch error JSON files, and the combined output.
package record

// Classification is the parsed verdict for one word.
type Classification struct {
	Reason     string
	NearWords  string
	Category   string // A, B or C
	Confidence int
	IsBoundary string // 是 or 否
}

// Record ties one word to either a classification or an error description.
// Exactly one of Class and Error is set.
type Record struct {
	Word  string
	Class *Classification
	Error string
	// Raw is the verbatim reply block (or a snippet of the full reply for
	// synthesized records).
	Raw string
}

// IsError reports whether this record describes a failure rather than a
// classification.
func (r Record) IsError() bool { return r.Error != "" }

// Success builds a classification record.
func Success(word string, c Classification, raw string) Record {
	return Record{Word: word, Class: &c, Raw: raw}
}

// Failure builds an error record.
func Failure(word, errMsg, raw string) Record {
	return Record{Word: word, Error: errMsg, Raw: raw}
}

// Errors filters recs down to the error records.
func Errors(recs []Record) []Record {
	var out []Record
	for _, r := range recs {
		if r.IsError() {
			out = append(out, r)
		}
	}
	return out
}

// Count returns (success, error) totals for recs.
func Count(recs []Record) (success, errors int) {
	for _, r := range recs {
		if r.IsError() {
			errors++
		} else {
			success++
		}
	}
	return success, errors
}
