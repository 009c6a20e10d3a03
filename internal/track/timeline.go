package track

import (
	"errors"
	"math"
	"regexp"
	"time"

	"github.com/subtrack/subtrack/internal/subtitle"
)

var ErrEmptyTimeline = errors.New("timeline needs at least one cue")

// Timeline is the ordered cue list of one subtitle track. It is immutable
// once built; Filter and SubRange derive new values instead of mutating.
type Timeline struct {
	cues     []subtitle.Cue
	styles   subtitle.StyleTable // nil outside styled mode
	duration time.Duration
}

// New builds a plain-text timeline.
func New(cues []subtitle.Cue) (*Timeline, error) {
	return newTimeline(cues, nil)
}

// NewStyled builds a word-styled timeline from a parser's cue list and style
// side table.
func NewStyled(cues []subtitle.Cue, styles subtitle.StyleTable) (*Timeline, error) {
	if styles == nil {
		styles = make(subtitle.StyleTable)
	}
	return newTimeline(cues, styles)
}

func newTimeline(cues []subtitle.Cue, styles subtitle.StyleTable) (*Timeline, error) {
	if len(cues) == 0 {
		return nil, ErrEmptyTimeline
	}

	owned := make([]subtitle.Cue, len(cues))
	copy(owned, cues)

	var duration time.Duration
	for _, c := range owned {
		if c.Interval.End > duration {
			duration = c.Interval.End
		}
	}

	return &Timeline{cues: owned, styles: styles, duration: duration}, nil
}

func (tl *Timeline) Len() int {
	return len(tl.cues)
}

// Cue returns the i-th cue in track order.
func (tl *Timeline) Cue(i int) subtitle.Cue {
	return tl.cues[i]
}

// Cues returns a copy of the ordered cue list.
func (tl *Timeline) Cues() []subtitle.Cue {
	out := make([]subtitle.Cue, len(tl.cues))
	copy(out, tl.cues)
	return out
}

// Duration is the largest cue end time.
func (tl *Timeline) Duration() time.Duration {
	return tl.duration
}

// Styled reports whether this timeline carries a word-style table.
func (tl *Timeline) Styled() bool {
	return tl.styles != nil
}

// Styles returns the word styles of a cue in styled mode.
func (tl *Timeline) Styles(c subtitle.Cue) ([]subtitle.WordStyle, bool) {
	words, ok := tl.styles[c]
	return words, ok
}

// ResolveActive returns the first cue in track order whose interval contains
// t. Query times outside every cue are not an error; ok is false.
func (tl *Timeline) ResolveActive(t time.Duration) (subtitle.Cue, bool) {
	for _, c := range tl.cues {
		if c.Interval.Contains(t) {
			return c, true
		}
	}
	return subtitle.Cue{}, false
}

// Bound is an optional sub-range edge. The zero value is an open bound.
type Bound struct {
	T   time.Duration
	Set bool
}

// Open leaves a sub-range edge unbounded.
var Open = Bound{}

// At closes a sub-range edge at t.
func At(t time.Duration) Bound {
	return Bound{T: t, Set: true}
}

// SubRange returns clamped copies of every cue overlapping [from, to). A cue
// (t1, t2) overlaps when from <= t1 < to or from < t2 <= to; the copy is
// clamped to (max(t1, from), min(t2, to)). An open bound neither restricts
// overlap nor clamps on its side.
func (tl *Timeline) SubRange(from, to Bound) []subtitle.Cue {
	var out []subtitle.Cue
	for _, c := range tl.cues {
		iv := c.Interval

		startIn := (!from.Set || from.T <= iv.Start) && (!to.Set || iv.Start < to.T)
		endIn := (!from.Set || from.T < iv.End) && (!to.Set || iv.End <= to.T)
		if !startIn && !endIn {
			continue
		}

		if from.Set && from.T > iv.Start {
			iv.Start = from.T
		}
		if to.Set && to.T < iv.End {
			iv.End = to.T
		}
		out = append(out, subtitle.Cue{Interval: iv, Text: c.Text})
	}
	return out
}

// Filter derives a timeline keeping only cues whose text matches re, in the
// original order. Styled cues keep their style entries.
func (tl *Timeline) Filter(re *regexp.Regexp) (*Timeline, error) {
	var kept []subtitle.Cue
	var styles subtitle.StyleTable
	if tl.styles != nil {
		styles = make(subtitle.StyleTable)
	}

	for _, c := range tl.cues {
		if !re.MatchString(c.Text) {
			continue
		}
		kept = append(kept, c)
		if tl.styles != nil {
			if words, ok := tl.styles[c]; ok {
				styles[c] = words
			}
		}
	}

	return newTimeline(kept, styles)
}

// Export serializes the timeline as timestamped text blocks.
func (tl *Timeline) Export() string {
	return subtitle.Export(tl.cues)
}

// Seconds converts a float second count, rounded to the millisecond grid both
// parsers produce, into a query time.
func Seconds(s float64) time.Duration {
	return time.Duration(math.Round(s*1000)) * time.Millisecond
}
