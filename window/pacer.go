package window

import "time"

// Pacer limits the frame rate for platforms that present as fast as they can.
// Wait must be called once at the end of every frame.
type Pacer struct {
	interval time.Duration
	next     time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

func NewPacer(fps int) *Pacer {
	p := &Pacer{now: time.Now, sleep: time.Sleep}
	p.SetTargetFPS(fps)
	return p
}

// SetTargetFPS changes the frame rate. A value below one disables pacing.
func (p *Pacer) SetTargetFPS(fps int) {
	p.next = time.Time{}

	if fps <= 0 {
		p.interval = 0
		return
	}

	p.interval = time.Second / time.Duration(fps)
}

func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// Wait blocks until the next frame is due. If the caller fell behind by
// more than one frame, the schedule restarts from now instead of rushing
// through the missed frames.
func (p *Pacer) Wait() {
	if p.interval == 0 {
		return
	}

	now := p.now()

	if p.next.IsZero() || now.Sub(p.next) > p.interval {
		p.next = now.Add(p.interval)
		return
	}

	if wait := p.next.Sub(now); wait > 0 {
		p.sleep(wait)
	}

	p.next = p.next.Add(p.interval)
}
