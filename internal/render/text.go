package render

import (
	"image"
	"image/draw"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type textStyle struct {
	color       string
	strokeColor string
	strokeWidth float64
	background  string
}

// drawText rasterizes possibly multi-line text onto a tight RGBA canvas. The
// stroke is drawn as an offset outline under the fill pass.
func drawText(face font.Face, text string, style textStyle) (*image.RGBA, error) {
	fg, err := ParseColor(orDefault(style.color, "white"))
	if err != nil {
		return nil, err
	}

	var bg image.Image
	if name := orDefault(style.background, "transparent"); name != "transparent" {
		bgCol, err := ParseColor(name)
		if err != nil {
			return nil, err
		}
		bg = image.NewUniform(bgCol)
	}

	strokePx := 0
	var stroke image.Image
	if style.strokeColor != "" && style.strokeWidth > 0 {
		strokeCol, err := ParseColor(style.strokeColor)
		if err != nil {
			return nil, err
		}
		stroke = image.NewUniform(strokeCol)
		strokePx = int(math.Ceil(style.strokeWidth))
	}

	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	lines := strings.Split(text, "\n")
	width := 0
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > width {
			width = w
		}
	}

	img := image.NewRGBA(image.Rect(0, 0,
		width+2*strokePx, lineHeight*len(lines)+2*strokePx))
	if bg != nil {
		draw.Draw(img, img.Bounds(), bg, image.Point{}, draw.Src)
	}

	d := &font.Drawer{Dst: img, Face: face}
	for i, line := range lines {
		baseline := strokePx + ascent + i*lineHeight

		if stroke != nil {
			d.Src = stroke
			for dy := -strokePx; dy <= strokePx; dy++ {
				for dx := -strokePx; dx <= strokePx; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					d.Dot = fixed.P(strokePx+dx, baseline+dy)
					d.DrawString(line)
				}
			}
		}

		d.Src = image.NewUniform(fg)
		d.Dot = fixed.P(strokePx, baseline)
		d.DrawString(line)
	}

	return img, nil
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
