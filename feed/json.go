package feed

import (
	"encoding/json"
	"fmt"

	"github.com/lixenwraith/marquee"
)

// Record is one JSON input line: {"content": "...", "prefix": "...",
// "suffix": "...", "rotate": true}. Only content is required.
type Record struct {
	Prefix  string `json:"prefix"`
	Content string `json:"content"`
	Suffix  string `json:"suffix"`
	Rotate  *bool  `json:"rotate"`
}

// DecodeRecord parses a JSON record from one input line. Malformed JSON or
// missing content is an error; the caller surfaces it once and stops
// retrying the line (fail fast, no partial rendering).
func DecodeRecord(line string) (Record, error) {
	var rec Record
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		return Record{}, fmt.Errorf("%w: %v", marquee.ErrInvalidSpec, err)
	}
	if err := (marquee.Spec{Content: rec.Content}).Validate(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Spec merges the record with base, the spec carrying the CLI-level options.
// Decoration nests record decoration inside the global decoration:
//
//	{global_prefix}{record_prefix}{window}{record_suffix}{global_suffix}
//
// Rotate defaults to true when the record omits it. Separator and Reverse
// come from base unchanged.
func (rec Record) Spec(base marquee.Spec) marquee.Spec {
	rotate := true
	if rec.Rotate != nil {
		rotate = *rec.Rotate
	}
	return marquee.Spec{
		Content:   rec.Content,
		Prefix:    base.Prefix + rec.Prefix,
		Suffix:    rec.Suffix + base.Suffix,
		Separator: base.Separator,
		Rotate:    rotate,
		Reverse:   base.Reverse,
	}
}
