package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding"
)

var timestampRegex = regexp.MustCompile(`(\d{1,2}):(\d{2}):(\d{2}),(\d{3})`)

// ParsePlainFile reads a plain timestamped subtitle file. enc may be nil for
// UTF-8 input.
func ParsePlainFile(path string, enc encoding.Encoding) ([]Cue, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open subtitle file: %w", err)
	}
	defer file.Close()

	return ParsePlain(file, enc)
}

// ParsePlain parses blocks of a timestamp pair line followed by text lines,
// terminated by a blank line. Index lines and a missing final blank line are
// tolerated. Any line carrying two HH:MM:SS,mmm stamps opens a new cue, so
// both "-->" and " - " separators parse.
func ParsePlain(r io.Reader, enc encoding.Encoding) ([]Cue, error) {
	if enc != nil {
		r = enc.NewDecoder().Reader(r)
	}

	var cues []Cue
	var interval *Interval
	var textLines []string

	flush := func() {
		if interval == nil {
			return
		}
		cues = append(cues, Cue{
			Interval: *interval,
			Text:     strings.Join(textLines, "\n"),
		})
		interval = nil
		textLines = nil
	}

	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		stamps := timestampRegex.FindAllStringSubmatch(line, -1)
		switch {
		case len(stamps) >= 2:
			flush()
			start, err := parseTimestamp(stamps[0])
			if err != nil {
				return nil, fmt.Errorf(
					"%w: invalid start timestamp at line %d: %v",
					ErrMalformedInput, lineNum, err,
				)
			}
			end, err := parseTimestamp(stamps[1])
			if err != nil {
				return nil, fmt.Errorf(
					"%w: invalid end timestamp at line %d: %v",
					ErrMalformedInput, lineNum, err,
				)
			}
			interval = &Interval{Start: start, End: end}
		case len(stamps) == 1:
			return nil, fmt.Errorf(
				"%w: line %d has a single timestamp, expected a pair",
				ErrMalformedInput, lineNum,
			)
		case strings.TrimSpace(line) == "":
			flush()
		default:
			// index lines and stray text outside a block are skipped
			if interval != nil {
				textLines = append(textLines, line)
			}
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading subtitle input: %w", err)
	}
	if len(cues) == 0 {
		return nil, fmt.Errorf("%w: no cue blocks found", ErrMalformedInput)
	}

	return cues, nil
}

func parseTimestamp(groups []string) (time.Duration, error) {
	h, err := strconv.Atoi(groups[1])
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(groups[2])
	if err != nil {
		return 0, err
	}
	s, err := strconv.Atoi(groups[3])
	if err != nil {
		return 0, err
	}
	ms, err := strconv.Atoi(groups[4])
	if err != nil {
		return 0, err
	}

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}
