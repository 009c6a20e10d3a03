package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/subtrack/subtrack/internal/subtitle"
	"github.com/subtrack/subtrack/internal/track"
)

// loadTimeline parses a subtitle file by extension: .json is the styled word
// format, anything else the plain block format.
func loadTimeline(path, encName string) (*track.Timeline, error) {
	enc, err := resolveEncoding(encName)
	if err != nil {
		return nil, err
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		cues, styles, err := subtitle.ParseStyledFile(path, enc)
		if err != nil {
			return nil, err
		}
		return track.NewStyled(cues, styles)
	}

	cues, err := subtitle.ParsePlainFile(path, enc)
	if err != nil {
		return nil, err
	}
	return track.New(cues)
}

func resolveEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
	return enc, nil
}
