package render

import (
	"image/color"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/subtrack/subtrack/internal/subtitle"
	"github.com/subtrack/subtrack/internal/track"
)

func TestRenderTextArtifact(t *testing.T) {
	r := New(DefaultOptions())

	art, err := r.RenderText("Hi")
	if err != nil {
		t.Fatalf("RenderText failed: %v", err)
	}

	frame := art.FrameAt(0)
	if frame.Bounds().Dx() == 0 || frame.Bounds().Dy() == 0 {
		t.Fatalf("expected a non-empty frame, got %v", frame.Bounds())
	}

	masker, ok := art.(track.Masker)
	if !ok {
		t.Fatal("default artifacts must expose a mask channel")
	}
	mask := masker.MaskAt(0)
	if mask.Bounds() != frame.Bounds() {
		t.Errorf("mask bounds %v differ from frame bounds %v",
			mask.Bounds(), frame.Bounds())
	}

	opaque := false
	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !opaque; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := mask.At(x, y).RGBA(); a > 0 {
				opaque = true
				break
			}
		}
	}
	if !opaque {
		t.Error("mask of rendered text is fully transparent")
	}
}

func TestRenderWordsCompositeWidth(t *testing.T) {
	r := New(DefaultOptions())

	words := []subtitle.WordStyle{
		{Text: "Hi ", Font: "Georgia", Size: 24, Color: "white",
			StrokeColor: "black", StrokeWidth: 1, Background: "transparent"},
		{Text: "there ", Font: "Georgia", Size: 24, Color: "yellow",
			StrokeColor: "black", StrokeWidth: 1, Background: "transparent"},
	}

	var wordWidths, firstHeight int
	for i, w := range words {
		img, err := drawText(basicfont.Face7x13, w.Text, textStyle{
			color:       w.Color,
			strokeColor: w.StrokeColor,
			strokeWidth: w.StrokeWidth,
			background:  w.Background,
		})
		if err != nil {
			t.Fatalf("drawText failed: %v", err)
		}
		wordWidths += img.Bounds().Dx()
		if i == 0 {
			firstHeight = img.Bounds().Dy()
		}
	}

	art, err := r.RenderWords(words)
	if err != nil {
		t.Fatalf("RenderWords failed: %v", err)
	}

	frame := art.FrameAt(0)
	if frame.Bounds().Dx() != wordWidths {
		t.Errorf("composite width %d, want summed word widths %d",
			frame.Bounds().Dx(), wordWidths)
	}
	if frame.Bounds().Dy() != firstHeight {
		t.Errorf("composite height %d, want first word height %d",
			frame.Bounds().Dy(), firstHeight)
	}
}

func TestRenderTextBadColor(t *testing.T) {
	opts := DefaultOptions()
	opts.Color = "not-a-color"

	if _, err := New(opts).RenderText("Hi"); err == nil {
		t.Error("expected an error for an unknown color")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "white", want: color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{in: "Black", want: color.RGBA{0x00, 0x00, 0x00, 0xff}},
		{in: "transparent", want: color.RGBA{}},
		{in: "#00ff00", want: color.RGBA{0x00, 0xff, 0x00, 0xff}},
		{in: "#bogus", wantErr: true},
		{in: "chartreuse-ish", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseColor(%q): expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
