package render

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/subtrack/subtrack/internal/subtitle"
	"github.com/subtrack/subtrack/internal/track"
)

// Options configure the default rasterizer: white text with a black outline,
// the usual subtitle look.
type Options struct {
	Color       string
	StrokeColor string
	StrokeWidth float64
	Background  string
}

func DefaultOptions() Options {
	return Options{
		Color:       "white",
		StrokeColor: "black",
		StrokeWidth: 1,
		Background:  "transparent",
	}
}

// TextRenderer rasterizes cue text with a fixed-metric face. It implements
// track.Renderer for both plain and styled sessions.
//
// The face is fixed: per-word Font and Size select faces only in renderers
// that do font discovery, which this default does not.
type TextRenderer struct {
	opts Options
	face font.Face
}

func New(opts Options) *TextRenderer {
	return &TextRenderer{opts: opts, face: basicfont.Face7x13}
}

func (r *TextRenderer) RenderText(text string) (track.Artifact, error) {
	img, err := drawText(r.face, text, textStyle{
		color:       r.opts.Color,
		strokeColor: r.opts.StrokeColor,
		strokeWidth: r.opts.StrokeWidth,
		background:  r.opts.Background,
	})
	if err != nil {
		return nil, err
	}
	return NewImageArtifact(img), nil
}

func (r *TextRenderer) RenderWords(words []subtitle.WordStyle) (track.Artifact, error) {
	imgs := make([]image.Image, 0, len(words))
	for _, w := range words {
		img, err := drawText(r.face, w.Text, textStyle{
			color:       w.Color,
			strokeColor: w.StrokeColor,
			strokeWidth: w.StrokeWidth,
			background:  w.Background,
		})
		if err != nil {
			return nil, fmt.Errorf("render word %q: %w", w.Text, err)
		}
		imgs = append(imgs, img)
	}
	return NewImageArtifact(Composite(imgs)), nil
}
