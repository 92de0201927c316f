package window

import "time"

// FrameTimes keeps a rolling average over the duration of recent frames.
type FrameTimes struct {
	FrameCount      uint64
	AverageDuration time.Duration
	MaxDuration     time.Duration

	// Delta time to previous frame
	Delta time.Duration

	lastTime time.Time
}

// number of frames the rolling average spans
const frameTimesWindow = 64

func (t *FrameTimes) update(d time.Duration) {
	t.Delta = d
	t.MaxDuration = max(t.MaxDuration, d)

	if t.FrameCount < frameTimesWindow/2 {
		t.AverageDuration = d
	} else {
		t.AverageDuration = ((frameTimesWindow-1)*t.AverageDuration + d) / frameTimesWindow
	}
}

func (t *FrameTimes) FPS() float64 {
	if t.AverageDuration <= 0 {
		return 0
	}

	return 1.0 / t.AverageDuration.Seconds()
}

// Tick records a frame finishing at now. It returns true once every 60 frames.
func (t *FrameTimes) Tick(now time.Time) bool {
	if t.FrameCount > 0 {
		t.update(now.Sub(t.lastTime))
	}

	t.lastTime = now
	t.FrameCount += 1

	return t.FrameCount%60 == 0
}
