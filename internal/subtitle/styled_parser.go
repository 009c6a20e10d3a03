package subtitle

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/text/encoding"
)

type styledWord struct {
	Text        string  `json:"text"`
	Font        string  `json:"font"`
	Size        float64 `json:"size"`
	Color       string  `json:"color"`
	StrokeColor string  `json:"strokeColor"`
	StrokeWidth float64 `json:"strokeWidth"`
	Background  string  `json:"backgroundColor"`
}

type styledLine struct {
	StartTimestamp int64        `json:"startTimestamp"`
	EndTimestamp   int64        `json:"endTimestamp"`
	Words          []styledWord `json:"words"`
}

// ParseStyledFile reads a styled JSON subtitle file: a list of timed word
// groups with millisecond timestamps.
func ParseStyledFile(path string, enc encoding.Encoding) ([]Cue, StyleTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open styled subtitle file: %w", err)
	}
	defer file.Close()

	return ParseStyled(file, enc)
}

// ParseStyled produces one cue per line plus the cue-to-word-styles side
// table. The cue text is the concatenation of the word texts, each padded
// with a trailing space; the stored word records carry the same padded text
// so the renderer spaces words identically.
func ParseStyled(r io.Reader, enc encoding.Encoding) ([]Cue, StyleTable, error) {
	if enc != nil {
		r = enc.NewDecoder().Reader(r)
	}

	var lines []styledLine
	if err := json.NewDecoder(r).Decode(&lines); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if len(lines) == 0 {
		return nil, nil, fmt.Errorf("%w: styled input has no lines", ErrMalformedInput)
	}

	cues := make([]Cue, 0, len(lines))
	styles := make(StyleTable, len(lines))

	for i, line := range lines {
		if len(line.Words) == 0 {
			return nil, nil, fmt.Errorf(
				"%w: styled line %d has no words", ErrMalformedInput, i,
			)
		}

		var sb strings.Builder
		words := make([]WordStyle, 0, len(line.Words))
		for _, w := range line.Words {
			padded := w.Text + " "
			sb.WriteString(padded)

			ws := WordStyle{
				Text:        padded,
				Font:        w.Font,
				Size:        w.Size,
				Color:       w.Color,
				StrokeColor: w.StrokeColor,
				StrokeWidth: w.StrokeWidth,
				Background:  w.Background,
			}
			if ws.StrokeWidth == 0 {
				ws.StrokeWidth = 1
			}
			if ws.Background == "" {
				ws.Background = "transparent"
			}
			words = append(words, ws)
		}

		cue := Cue{
			Interval: Interval{
				Start: time.Duration(line.StartTimestamp) * time.Millisecond,
				End:   time.Duration(line.EndTimestamp) * time.Millisecond,
			},
			Text: sb.String(),
		}
		cues = append(cues, cue)
		styles[cue] = words
	}

	return cues, styles, nil
}
