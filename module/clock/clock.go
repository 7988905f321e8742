package clock

import (
	"time"

	"go.uber.org/atomic"

	"github.com/onflow/flow-crowdfund/module"
)

// System is a clock backed by the wall clock of the host. It never returns a
// value below one it returned before, even if the host clock is set back.
type System struct {
	now     func() time.Time
	highest *atomic.Int64
}

var _ module.Clock = (*System)(nil)

func NewSystem() *System {
	return &System{
		now:     time.Now,
		highest: atomic.NewInt64(0),
	}
}

func (s *System) Now() int64 {
	current := s.now().Unix()
	for {
		highest := s.highest.Load()
		if current <= highest {
			return highest
		}
		if s.highest.CompareAndSwap(highest, current) {
			return current
		}
	}
}

// Manual is a clock that only moves when told to.
type Manual struct {
	now *atomic.Int64
}

var _ module.Clock = (*Manual)(nil)

func NewManual(start int64) *Manual {
	return &Manual{now: atomic.NewInt64(start)}
}

func (m *Manual) Now() int64 {
	return m.now.Load()
}

// Set moves the clock to t. Moving it backwards panics.
func (m *Manual) Set(t int64) {
	for {
		current := m.now.Load()
		if t < current {
			panic("manual clock cannot go backwards")
		}
		if m.now.CompareAndSwap(current, t) {
			return
		}
	}
}

// Advance moves the clock forward by the given number of seconds.
func (m *Manual) Advance(seconds int64) int64 {
	if seconds < 0 {
		panic("manual clock cannot go backwards")
	}
	return m.now.Add(seconds)
}
