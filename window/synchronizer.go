package window

// Clock is a microsecond time source that can block.
type Clock interface {
	Ticks() int64
	Delay(us int64)
}

type TimeSynchronizer struct {
	prevTicks, usPerFrame int64
	clock                 Clock
}

func NewTimeSynchronizer(clock Clock, targetFPS float64) *TimeSynchronizer {
	return &TimeSynchronizer{
		prevTicks:  clock.Ticks(),
		usPerFrame: int64(1000000.0 / targetFPS),
		clock:      clock,
	}
}

func (ts *TimeSynchronizer) MaySleep() {
	cur := ts.clock.Ticks()
	if cur < ts.prevTicks {
		return
	}
	diff := ts.usPerFrame - (cur - ts.prevTicks)
	if diff > 0 {
		ts.clock.Delay(diff)
	}
	ts.prevTicks += ts.usPerFrame
}
