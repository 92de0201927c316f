package window

import (
	"errors"

	"github.com/oliverbestmann/firstwindow/scene"
)

// fakePlatform opens fakeSurfaces and records them.
type fakePlatform struct {
	// error returned by Open
	openErr error

	// number of frames after which the surface requests a close
	closeAfter int

	surfaces []*fakeSurface
}

func (p *fakePlatform) Open(config Config) (Surface, error) {
	if p.openErr != nil {
		return nil, p.openErr
	}

	s := &fakeSurface{config: config, closeAfter: p.closeAfter}
	p.surfaces = append(p.surfaces, s)
	return s, nil
}

func (p *fakePlatform) surface() *fakeSurface {
	if len(p.surfaces) == 0 {
		return nil
	}

	return p.surfaces[len(p.surfaces)-1]
}

var errNoDisplay = errors.New("no display available")

type fakeSurface struct {
	config     Config
	closeAfter int

	targetFPS []int

	shouldCloseCalls int
	beginCalls       int
	endCalls         int
	closeCalls       int

	// any call that happened after Close or outside of a frame
	misuse []string

	inFrame  bool
	recorder scene.Recorder
}

func (s *fakeSurface) checkOpen(call string) {
	if s.closeCalls > 0 {
		s.misuse = append(s.misuse, call+" after close")
	}
}

func (s *fakeSurface) SetTargetFPS(fps int) {
	s.checkOpen("SetTargetFPS")
	s.targetFPS = append(s.targetFPS, fps)
}

func (s *fakeSurface) ShouldClose() bool {
	s.checkOpen("ShouldClose")
	s.shouldCloseCalls++
	return s.endCalls >= s.closeAfter
}

func (s *fakeSurface) BeginFrame() scene.Canvas {
	s.checkOpen("BeginFrame")
	if s.inFrame {
		s.misuse = append(s.misuse, "BeginFrame twice")
	}

	s.inFrame = true
	s.beginCalls++
	return &s.recorder
}

func (s *fakeSurface) EndFrame() {
	s.checkOpen("EndFrame")
	if !s.inFrame {
		s.misuse = append(s.misuse, "EndFrame without BeginFrame")
	}

	s.inFrame = false
	s.endCalls++
}

func (s *fakeSurface) Close() {
	s.closeCalls++
}

func (s *fakeSurface) count(kind scene.CommandKind) int {
	var n int
	for _, cmd := range s.recorder.Commands {
		if cmd.Kind == kind {
			n++
		}
	}

	return n
}
