package subtitle

import (
	"errors"
	"time"
)

// returned when a file has no parsable cue blocks or broken structure
var ErrMalformedInput = errors.New("malformed subtitle input")

// Interval is the span a cue is showing for. Right-open: the cue is active
// for Start <= t < End, so an interval with Start >= End never matches.
type Interval struct {
	Start time.Duration
	End   time.Duration
}

func (iv Interval) Contains(t time.Duration) bool {
	return iv.Start <= t && t < iv.End
}

// represents a single subtitle cue
//
// Cue is a comparable value type. Both parsers convert timestamps through
// integer milliseconds, so two cues built from the same input compare equal
// and can key a map directly.
type Cue struct {
	Interval Interval
	Text     string
}

// per-word styling carried by the styled JSON format
type WordStyle struct {
	Text        string
	Font        string
	Size        float64
	Color       string
	StrokeColor string
	StrokeWidth float64
	Background  string
}

// StyleTable maps each styled cue to its word list. The styled parser always
// produces the cue list and this table together.
type StyleTable map[Cue][]WordStyle
