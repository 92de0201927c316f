package typeset

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/oliverbestmann/firstwindow/scene"
)

func newTestRasterizer(t *testing.T) *Rasterizer {
	t.Helper()

	r, err := NewRasterizer()
	if err != nil {
		t.Fatalf("failed to create rasterizer: %v", err)
	}

	t.Cleanup(r.Close)

	return r
}

func TestRasterizeDefaultLabel(t *testing.T) {
	r := newTestRasterizer(t)

	label := scene.Default().Labels[0]

	img, err := r.Rasterize(label)
	if err != nil {
		t.Fatalf("rasterize failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Min.X > 0 || bounds.Min.Y > 0 {
		t.Errorf("image must contain the label position, got %v", bounds)
	}

	if bounds.Dx() <= int(label.Size) {
		t.Errorf("image of %q is too narrow: %d", label.Text, bounds.Dx())
	}

	if bounds.Dy() < int(label.Size)/2 || bounds.Dy() > 2*int(label.Size) {
		t.Errorf("unexpected image height %d for size %d", bounds.Dy(), label.Size)
	}

	var inked int
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := img.NRGBAAt(x, y)
			if px.A == 0 {
				continue
			}

			if px.R != 0 || px.G != 0 || px.B != 0 {
				t.Fatalf("black text produced pixel %v at %d,%d", px, x, y)
			}

			inked++
		}
	}

	if inked == 0 {
		t.Errorf("no pixel was drawn")
	}
}

func TestRasterizeKeepsColor(t *testing.T) {
	r := newTestRasterizer(t)

	red := color.RGBA{R: 255, A: 255}

	img, err := r.Rasterize(scene.Label{Text: "HHH", Size: 40, Color: red})
	if err != nil {
		t.Fatalf("rasterize failed: %v", err)
	}

	var found bool
	for idx := 0; idx+3 < len(img.Pix); idx += 4 {
		px := img.Pix[idx : idx+4 : idx+4]
		if px[3] > 0 && px[0] > 200 && px[1] == 0 && px[2] == 0 {
			found = true
			break
		}
	}

	if !found {
		t.Errorf("expected red pixels in the image")
	}
}

func TestRasterizeWidthGrowsWithText(t *testing.T) {
	r := newTestRasterizer(t)

	short, err := r.Rasterize(scene.Label{Text: "First", Size: 30, Color: scene.ColorBlack})
	if err != nil {
		t.Fatalf("rasterize failed: %v", err)
	}

	long, err := r.Rasterize(scene.Label{Text: "First Raylib Window", Size: 30, Color: scene.ColorBlack})
	if err != nil {
		t.Fatalf("rasterize failed: %v", err)
	}

	if long.Bounds().Dx() <= short.Bounds().Dx() {
		t.Errorf("longer text must be wider: %d <= %d", long.Bounds().Dx(), short.Bounds().Dx())
	}

	face, err := r.Face(30)
	if err != nil {
		t.Fatalf("face failed: %v", err)
	}

	lineHeight := (face.Metrics().Ascent + face.Metrics().Descent).Ceil()
	for _, img := range []*image.NRGBA{short, long} {
		if img.Bounds().Dy() < lineHeight {
			t.Errorf("image must cover the line height %d, got %d", lineHeight, img.Bounds().Dy())
		}
	}
}

func TestRasterizeDoesNotClipInk(t *testing.T) {
	tests := []struct {
		name string
		ttf  []byte
		text string
	}{
		{"italic f", goitalic.TTF, "f"},
		{"italic words", goitalic.TTF, "fjord of jiffy"},
		{"regular descender", goregular.TTF, "j"},
		{"regular label", goregular.TTF, "First Raylib Window"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRasterizerFromTTF(tt.ttf)
			if err != nil {
				t.Fatalf("failed to create rasterizer: %v", err)
			}

			t.Cleanup(r.Close)

			label := scene.Label{Text: tt.text, Size: 48, Color: scene.ColorBlack}

			img, err := r.Rasterize(label)
			if err != nil {
				t.Fatalf("rasterize failed: %v", err)
			}

			face, err := r.Face(label.Size)
			if err != nil {
				t.Fatalf("face failed: %v", err)
			}

			// draw the same text onto a canvas with plenty of room around it
			canvas := image.NewNRGBA(image.Rect(-200, -200, 1000, 400))
			drawer := font.Drawer{
				Dst:  canvas,
				Src:  image.NewUniform(label.Color),
				Face: face,
				Dot:  fixed.Point26_6{X: 0, Y: face.Metrics().Ascent},
			}

			drawer.DrawString(label.Text)

			want := inkOf(canvas)
			if want == 0 {
				t.Fatalf("reference drawing has no ink")
			}

			if got := inkOf(img); got != want {
				t.Errorf("image %v lost ink: got %d, want %d", img.Bounds(), got, want)
			}
		})
	}
}

// inkOf sums the alpha of all pixels
func inkOf(img *image.NRGBA) int {
	var ink int
	for idx := 3; idx < len(img.Pix); idx += 4 {
		ink += int(img.Pix[idx])
	}

	return ink
}

func TestRasterizeEmptyText(t *testing.T) {
	r := newTestRasterizer(t)

	img, err := r.Rasterize(scene.Label{Size: 30, Color: scene.ColorBlack})
	if err != nil {
		t.Fatalf("rasterize failed: %v", err)
	}

	if !img.Bounds().Empty() {
		t.Errorf("expected empty image, got %v", img.Bounds())
	}
}

func TestRasterizeInvalidSize(t *testing.T) {
	r := newTestRasterizer(t)

	for _, size := range []int32{0, -3} {
		if _, err := r.Rasterize(scene.Label{Text: "x", Size: size}); err == nil {
			t.Errorf("expected error for size %d", size)
		}
	}
}

func TestFaceCache(t *testing.T) {
	r := newTestRasterizer(t)

	first, err := r.Face(30)
	if err != nil {
		t.Fatalf("face failed: %v", err)
	}

	second, err := r.Face(30)
	if err != nil {
		t.Fatalf("face failed: %v", err)
	}

	if first != second {
		t.Errorf("expected the cached face to be reused")
	}

	for size := int32(1); size <= 2*maxFaces; size++ {
		if _, err := r.Face(size); err != nil {
			t.Fatalf("face %d failed: %v", size, err)
		}
	}

	if r.faces.Len() != maxFaces {
		t.Errorf("cache must be bounded to %d faces, got %d", maxFaces, r.faces.Len())
	}
}

func TestInvalidFont(t *testing.T) {
	if _, err := NewRasterizerFromTTF([]byte("not a font")); err == nil {
		t.Errorf("expected error for invalid font data")
	}
}
