package scene

import "image/color"

type CommandKind uint8

const (
	CommandClear CommandKind = iota + 1
	CommandText
)

func (k CommandKind) String() string {
	switch k {
	case CommandClear:
		return "Clear"
	case CommandText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Command is a single draw call issued to a Canvas.
type Command struct {
	Kind CommandKind

	// only set for CommandClear
	Color color.RGBA

	// only set for CommandText
	Label Label
}

// Recorder is a Canvas that records the commands instead of drawing them.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) Clear(color color.RGBA) {
	r.Commands = append(r.Commands, Command{Kind: CommandClear, Color: color})
}

func (r *Recorder) DrawText(label Label) {
	r.Commands = append(r.Commands, Command{Kind: CommandText, Label: label})
}

func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}
