package tween

import (
	"sort"
	"time"
)

type timer struct {
	at  time.Duration
	seq uint64
	fn  func()
}

// A Timeline owns the running tweens and delayed calls of one animation loop.
// It is not safe for concurrent use.
type Timeline struct {
	now     time.Duration
	seq     uint64
	tweens  []*Tween
	owners  map[*float64]*Tween
	pending []timer
}

// NewTimeline creates an instance of a Timeline.
func NewTimeline() *Timeline {
	tl := new(Timeline)
	tl.owners = make(map[*float64]*Tween)
	return tl
}

// Now returns the time the timeline has advanced to.
func (tl *Timeline) Now() time.Duration {
	return tl.now
}

// To starts a tween of props over duration. A property already driven by an
// in-flight tween is taken over by the new one.
func (tl *Timeline) To(duration time.Duration, ease Func, props ...Property) *Tween {
	t := newTween(duration, ease, props)
	for _, p := range t.props {
		if prev, ok := tl.owners[p.target]; ok && prev != t {
			prev.release(p.target)
		}
		tl.owners[p.target] = t
	}
	tl.tweens = append(tl.tweens, t)
	return t
}

// After schedules fn to run once delay from now.
func (tl *Timeline) After(delay time.Duration, fn func()) {
	tl.seq++
	tl.pending = append(tl.pending, timer{at: tl.now + delay, seq: tl.seq, fn: fn})
}

// Owner returns the in-flight tween driving target.
func (tl *Timeline) Owner(target *float64) (*Tween, bool) {
	t, ok := tl.owners[target]
	return t, ok
}

// Active returns the number of in-flight tweens.
func (tl *Timeline) Active() int {
	n := 0
	for _, t := range tl.tweens {
		if !t.done && !t.killed {
			n++
		}
	}
	return n
}

// Pending returns the number of delayed calls that have not fired yet.
func (tl *Timeline) Pending() int {
	return len(tl.pending)
}

// Advance moves the timeline forward by dt. Tweens are stepped first, then
// completion callbacks run, then due delayed calls in schedule order.
// Callbacks may start new tweens; those begin on the next Advance.
func (tl *Timeline) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	tl.now += dt

	running := tl.tweens
	tl.tweens = nil
	var completed []*Tween
	for _, t := range running {
		if t.killed {
			continue
		}
		t.step(dt)
		if t.done {
			completed = append(completed, t)
			for _, p := range t.props {
				if tl.owners[p.target] == t {
					delete(tl.owners, p.target)
				}
			}
			continue
		}
		tl.tweens = append(tl.tweens, t)
	}

	for _, t := range completed {
		if t.onComplete != nil {
			t.onComplete()
		}
	}

	tl.fireDue()
}

func (tl *Timeline) fireDue() {
	if len(tl.pending) == 0 {
		return
	}

	sort.SliceStable(tl.pending, func(i, j int) bool {
		if tl.pending[i].at == tl.pending[j].at {
			return tl.pending[i].seq < tl.pending[j].seq
		}
		return tl.pending[i].at < tl.pending[j].at
	})

	n := 0
	for n < len(tl.pending) && tl.pending[n].at <= tl.now {
		n++
	}
	due := make([]timer, n)
	copy(due, tl.pending[:n])
	tl.pending = tl.pending[n:]

	for _, d := range due {
		d.fn()
	}
}
