package track

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/subtrack/subtrack/internal/subtitle"
)

var (
	// ErrStyleMissing means a styled timeline resolved a cue with no entry
	// in its style table. The parser builds the two structures together, so
	// this is a broken cue-identity invariant, not a recoverable condition.
	ErrStyleMissing = errors.New("cue has no style table entry")

	// ErrNoMask means the session's renderer produces artifacts without a
	// mask channel.
	ErrNoMask = errors.New("renderer artifacts expose no mask")
)

// Renderer rasterizes cue content into artifacts. Plain sessions call
// RenderText, styled sessions RenderWords; either call may block for as long
// as rasterization takes.
//
// RenderWords lays words out left to right: each word's origin is offset by
// the cumulative width of the words before it, all anchored to a shared top
// edge, so the composite is as wide as the words combined and as tall as the
// first word.
type Renderer interface {
	RenderText(text string) (Artifact, error)
	RenderWords(words []subtitle.WordStyle) (Artifact, error)
}

// Session binds one timeline to its render cache and renderer and resolves
// frames by query time. Create one per subtitle track and discard them
// together.
type Session struct {
	timeline *Timeline
	cache    *Cache
	renderer Renderer
	hasMask  bool
}

// NewSession probes the renderer once with a throwaway artifact to decide
// whether masks are available; the answer is fixed for the whole session.
func NewSession(tl *Timeline, r Renderer) (*Session, error) {
	if tl == nil {
		return nil, errors.New("session needs a timeline")
	}
	if r == nil {
		return nil, errors.New("session needs a renderer")
	}

	probe, err := r.RenderText("T")
	if err != nil {
		return nil, fmt.Errorf("mask probe render failed: %w", err)
	}
	_, hasMask := probe.(Masker)

	return &Session{
		timeline: tl,
		cache:    NewCache(),
		renderer: r,
		hasMask:  hasMask,
	}, nil
}

func (s *Session) Timeline() *Timeline {
	return s.timeline
}

// HasMask reports whether MaskAt is usable for this session.
func (s *Session) HasMask() bool {
	return s.hasMask
}

// activeCue prefers an already-rendered cue covering t over an unrendered
// one, so scrubbing across overlapping cues does not trigger redundant
// renders. Both passes walk track order, keeping resolution deterministic.
func (s *Session) activeCue(t time.Duration) (subtitle.Cue, bool) {
	for _, c := range s.timeline.cues {
		if c.Interval.Contains(t) && s.cache.Rendered(c) {
			return c, true
		}
	}
	return s.timeline.ResolveActive(t)
}

func (s *Session) artifactAt(t time.Duration) (Artifact, bool, error) {
	cue, ok := s.activeCue(t)
	if !ok {
		return nil, false, nil
	}

	art, err := s.cache.GetOrRender(cue, func() (Artifact, error) {
		if s.timeline.Styled() {
			words, ok := s.timeline.Styles(cue)
			if !ok {
				return nil, fmt.Errorf("%w: cue at %s", ErrStyleMissing,
					subtitle.FormatTimestamp(cue.Interval.Start))
			}
			return s.renderer.RenderWords(words)
		}
		return s.renderer.RenderText(cue.Text)
	})
	if err != nil {
		return nil, false, fmt.Errorf("render cue at %s: %w",
			subtitle.FormatTimestamp(cue.Interval.Start), err)
	}
	return art, true, nil
}

// FrameAt returns the active cue's frame at t. When no cue is active it
// returns a one-pixel black frame, not an error.
func (s *Session) FrameAt(t time.Duration) (image.Image, error) {
	art, ok, err := s.artifactAt(t)
	if err != nil {
		return nil, err
	}
	if !ok {
		return blankFrame(), nil
	}
	return art.FrameAt(t), nil
}

// MaskAt returns the active cue's alpha mask at t, or a one-pixel zero mask
// when no cue is active. ErrNoMask when the session has no mask channel.
func (s *Session) MaskAt(t time.Duration) (image.Image, error) {
	if !s.hasMask {
		return nil, ErrNoMask
	}

	art, ok, err := s.artifactAt(t)
	if err != nil {
		return nil, err
	}
	if !ok {
		return blankMask(), nil
	}

	m, ok := art.(Masker)
	if !ok {
		return nil, ErrNoMask
	}
	return m.MaskAt(t), nil
}

func blankFrame() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.Black)
	return img
}

func blankMask() image.Image {
	return image.NewAlpha(image.Rect(0, 0, 1, 1))
}
