package render

import (
	"image"
	"image/draw"
)

// layoutOffsets places word images left to right: each origin is the summed
// width of everything before it.
func layoutOffsets(widths []int) (offsets []int, total int) {
	offsets = make([]int, len(widths))
	for i, w := range widths {
		offsets[i] = total
		total += w
	}
	return offsets, total
}

// Composite joins word images left to right on a shared top edge. The result
// is as wide as the words combined and as tall as the first word.
func Composite(words []image.Image) *image.RGBA {
	if len(words) == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	widths := make([]int, len(words))
	for i, w := range words {
		widths[i] = w.Bounds().Dx()
	}
	offsets, total := layoutOffsets(widths)
	height := words[0].Bounds().Dy()

	dst := image.NewRGBA(image.Rect(0, 0, total, height))
	for i, w := range words {
		r := image.Rect(offsets[i], 0, offsets[i]+widths[i], height)
		draw.Draw(dst, r, w, w.Bounds().Min, draw.Over)
	}
	return dst
}
