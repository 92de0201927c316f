// Package typeset rasterizes labels into images using the Go fonts.
package typeset

import (
	"fmt"
	"image"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/oliverbestmann/firstwindow/scene"
)

// number of font sizes to keep a face for
const maxFaces = 8

type Rasterizer struct {
	font  *opentype.Font
	faces *lru.Cache[int32, font.Face]
}

// NewRasterizer creates a Rasterizer using the Go Regular font.
func NewRasterizer() (*Rasterizer, error) {
	return NewRasterizerFromTTF(goregular.TTF)
}

func NewRasterizerFromTTF(ttf []byte) (*Rasterizer, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	faces, err := lru.NewWithEvict[int32, font.Face](maxFaces, closeFaceOnEvict)
	if err != nil {
		return nil, fmt.Errorf("create face cache: %w", err)
	}

	return &Rasterizer{font: parsed, faces: faces}, nil
}

func closeFaceOnEvict(_ int32, face font.Face) {
	_ = face.Close()
}

// Face returns the font face for the given pixel size.
func (r *Rasterizer) Face(size int32) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %d", size)
	}

	if face, ok := r.faces.Get(size); ok {
		return face, nil
	}

	face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})

	if err != nil {
		return nil, fmt.Errorf("create face of size %d: %w", size, err)
	}

	r.faces.Add(size, face)

	return face, nil
}

// Rasterize draws the text of the label into a new image that is just large
// enough to hold it. The point (0, 0) of the image is meant to be placed at the
// position of the label. The bounds cover the line box of the text and every
// pixel of ink, glyphs that overhang the line box (like an italic f) can move
// the minimum of the bounds below zero. The image is empty if the label has no text.
func (r *Rasterizer) Rasterize(label scene.Label) (*image.NRGBA, error) {
	face, err := r.Face(label.Size)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(Bounds(face, label.Text))

	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(label.Color),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: face.Metrics().Ascent},
	}

	drawer.DrawString(label.Text)

	return img, nil
}

// Bounds returns the pixels touched by drawing text with its top left corner at (0, 0).
func Bounds(face font.Face, text string) image.Rectangle {
	metrics := face.Metrics()

	inkBounds, advance := font.BoundString(face, text)

	lineBox := image.Rect(0, 0, advance.Ceil(), (metrics.Ascent + metrics.Descent).Ceil())

	ink := image.Rect(
		inkBounds.Min.X.Floor(),
		(inkBounds.Min.Y + metrics.Ascent).Floor(),
		inkBounds.Max.X.Ceil(),
		(inkBounds.Max.Y + metrics.Ascent).Ceil(),
	)

	return lineBox.Union(ink)
}

// Close releases all cached faces.
func (r *Rasterizer) Close() {
	r.faces.Purge()
}
