package scene

import "image/color"

var ColorWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
var ColorBlack = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// Label is a single line of text drawn at a fixed pixel position.
// X and Y point to the top left corner of the text, Size is the
// font size in pixels.
type Label struct {
	Text  string
	X, Y  int32
	Size  int32
	Color color.RGBA
}

// Canvas is the drawing surface of the current frame.
type Canvas interface {
	Clear(color color.RGBA)
	DrawText(label Label)
}

// Scene describes everything that is drawn in a single frame.
type Scene struct {
	Background color.RGBA
	Labels     []Label
}

// Default returns the scene shown by the first window: a white
// background with a single black label.
func Default() Scene {
	return Scene{
		Background: ColorWhite,
		Labels: []Label{
			{
				Text:  "First Raylib Window",
				X:     400,
				Y:     350,
				Size:  30,
				Color: ColorBlack,
			},
		},
	}
}

// Draw clears the canvas to the background color and then draws
// every label in order.
func (s Scene) Draw(canvas Canvas) {
	canvas.Clear(s.Background)

	for _, label := range s.Labels {
		canvas.DrawText(label)
	}
}

// Commands returns the draw calls Draw issues for this scene.
func (s Scene) Commands() []Command {
	var rec Recorder
	s.Draw(&rec)
	return rec.Commands
}
