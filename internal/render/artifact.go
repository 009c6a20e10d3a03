package render

import (
	"image"
	"image/color"
	"time"
)

// ImageArtifact is a static rendered cue: the same frame at every query
// time. The alpha mask is extracted once at construction.
type ImageArtifact struct {
	frame image.Image
	mask  *image.Alpha
}

func NewImageArtifact(frame image.Image) *ImageArtifact {
	return &ImageArtifact{frame: frame, mask: alphaMask(frame)}
}

func (a *ImageArtifact) FrameAt(t time.Duration) image.Image {
	return a.frame
}

func (a *ImageArtifact) MaskAt(t time.Duration) image.Image {
	return a.mask
}

func alphaMask(img image.Image) *image.Alpha {
	b := img.Bounds()
	mask := image.NewAlpha(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			mask.SetAlpha(x, y, color.Alpha{A: uint8(a >> 8)})
		}
	}
	return mask
}
