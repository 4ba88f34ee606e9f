package tween

import (
	"time"
)

// Func maps linear progress in [0, 1] to eased progress.
type Func func(t float64) float64

type prop struct {
	target *float64
	from   float64
	to     float64
}

// A Property describes one value a Tween drives.
type Property struct {
	target   *float64
	value    float64
	relative bool
}

// Prop tweens target to an absolute end value.
func Prop(target *float64, end float64) Property {
	return Property{target: target, value: end}
}

// By tweens target by delta relative to its value when the tween is created.
func By(target *float64, delta float64) Property {
	return Property{target: target, value: delta, relative: true}
}

// A Tween interpolates a set of properties over a fixed duration.
type Tween struct {
	props      []*prop
	duration   time.Duration
	elapsed    time.Duration
	ease       Func
	onComplete func()
	done       bool
	killed     bool
}

func newTween(duration time.Duration, ease Func, props []Property) *Tween {
	t := new(Tween)
	t.duration = duration
	t.ease = ease
	if t.ease == nil {
		t.ease = linear
	}

	t.props = make([]*prop, 0, len(props))
	for _, p := range props {
		if p.target == nil {
			continue
		}

		from := *p.target
		to := p.value
		if p.relative {
			to = from + p.value
		}
		t.props = append(t.props, &prop{target: p.target, from: from, to: to})
	}

	return t
}

// OnComplete registers fn to run once after every property reached its end.
// It does not run if the tween is killed by an overwrite.
func (t *Tween) OnComplete(fn func()) *Tween {
	t.onComplete = fn
	return t
}

// End reports the end value the tween drives target to, if target belongs to it.
func (t *Tween) End(target *float64) (float64, bool) {
	for _, p := range t.props {
		if p.target == target {
			return p.to, true
		}
	}
	return 0, false
}

// Done reports whether the tween completed.
func (t *Tween) Done() bool {
	return t.done
}

// Killed reports whether every property of the tween was claimed by a later tween.
func (t *Tween) Killed() bool {
	return t.killed
}

// Progress returns the linear progress in [0, 1].
func (t *Tween) Progress() float64 {
	if t.duration <= 0 {
		return 1
	}
	p := float64(t.elapsed) / float64(t.duration)
	if p > 1 {
		return 1
	}
	return p
}

func (t *Tween) release(target *float64) {
	for i, p := range t.props {
		if p.target == target {
			t.props = append(t.props[:i], t.props[i+1:]...)
			break
		}
	}
	if len(t.props) == 0 && !t.done {
		t.killed = true
	}
}

func (t *Tween) step(dt time.Duration) {
	t.elapsed += dt
	progress := t.Progress()
	if progress >= 1 {
		for _, p := range t.props {
			*p.target = p.to
		}
		t.done = true
		return
	}

	eased := t.ease(progress)
	for _, p := range t.props {
		*p.target = p.from + (p.to-p.from)*eased
	}
}

func linear(t float64) float64 {
	return t
}
