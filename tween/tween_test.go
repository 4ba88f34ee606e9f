package tween

import (
	"testing"
	"time"

	"github.com/fogleman/ease"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = time.Second / 60

func advanceFor(tl *Timeline, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		tl.Advance(frame)
	}
}

func TestToReachesEndValue(t *testing.T) {
	tl := NewTimeline()
	x, y := 0.0, 10.0
	tl.To(time.Second, ease.OutBounce, Prop(&x, 4), Prop(&y, -2))

	tl.Advance(500 * time.Millisecond)
	assert.InDelta(t, 4*ease.OutBounce(0.5), x, 1e-9)
	assert.Equal(t, 1, tl.Active())

	tl.Advance(500 * time.Millisecond)
	assert.Equal(t, 4.0, x)
	assert.Equal(t, -2.0, y)
	assert.Equal(t, 0, tl.Active())
}

func TestByIsRelativeToCreationValue(t *testing.T) {
	tl := NewTimeline()
	z := 1.0
	tw := tl.To(300*time.Millisecond, ease.InOutQuad, By(&z, 0.5))
	end, ok := tw.End(&z)
	require.True(t, ok)
	assert.Equal(t, 1.5, end)

	advanceFor(tl, 400*time.Millisecond)
	assert.Equal(t, 1.5, z)
}

func TestOnCompleteFiresOnce(t *testing.T) {
	tl := NewTimeline()
	x := 0.0
	calls := 0
	tl.To(100*time.Millisecond, nil, Prop(&x, 1)).OnComplete(func() { calls++ })

	advanceFor(tl, time.Second)
	assert.Equal(t, 1, calls)
}

func TestCompletionMayStartAnotherTween(t *testing.T) {
	tl := NewTimeline()
	x := 0.0
	tl.To(100*time.Millisecond, nil, Prop(&x, 1)).OnComplete(func() {
		tl.To(100*time.Millisecond, nil, Prop(&x, 3))
	})

	advanceFor(tl, 500*time.Millisecond)
	assert.Equal(t, 3.0, x)
}

func TestOverwriteKillsPreviousTween(t *testing.T) {
	tl := NewTimeline()
	x := 0.0
	first := tl.To(time.Second, ease.Linear, Prop(&x, 10))
	fired := false
	first.OnComplete(func() { fired = true })

	tl.Advance(100 * time.Millisecond)
	second := tl.To(time.Second, ease.Linear, Prop(&x, -10))
	assert.True(t, first.Killed())

	advanceFor(tl, 2*time.Second)
	assert.False(t, fired)
	assert.True(t, second.Done())
	assert.Equal(t, -10.0, x)
}

func TestOverwriteIsPerProperty(t *testing.T) {
	tl := NewTimeline()
	x, y := 0.0, 0.0
	first := tl.To(time.Second, ease.Linear, Prop(&x, 1), Prop(&y, 1))
	tl.To(time.Second, ease.Linear, Prop(&x, 5))

	assert.False(t, first.Killed())
	owner, ok := tl.Owner(&y)
	require.True(t, ok)
	assert.Same(t, first, owner)

	advanceFor(tl, 2*time.Second)
	assert.Equal(t, 5.0, x)
	assert.Equal(t, 1.0, y)
	assert.True(t, first.Done())
}

func TestAfterRunsAtDelay(t *testing.T) {
	tl := NewTimeline()
	var order []int
	tl.After(300*time.Millisecond, func() { order = append(order, 2) })
	tl.After(100*time.Millisecond, func() { order = append(order, 1) })
	tl.After(300*time.Millisecond, func() { order = append(order, 3) })

	tl.Advance(200 * time.Millisecond)
	assert.Equal(t, []int{1}, order)
	assert.Equal(t, 2, tl.Pending())

	tl.Advance(100 * time.Millisecond)
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, 0, tl.Pending())
}

func TestZeroDurationCompletesOnNextAdvance(t *testing.T) {
	tl := NewTimeline()
	x := 2.0
	tw := tl.To(0, nil, Prop(&x, 7))
	assert.Equal(t, 2.0, x)
	tl.Advance(0)
	assert.True(t, tw.Done())
	assert.Equal(t, 7.0, x)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want Func
	}{
		{"bounce.out", ease.OutBounce},
		{"power1.inOut", ease.InOutQuad},
		{"Power2.In", ease.InCubic},
		{"sine", ease.OutSine},
		{"none", ease.Linear},
		{"", ease.Linear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Lookup(tt.name)
			require.NoError(t, err)
			for _, p := range []float64{0.1, 0.37, 0.8} {
				assert.Equal(t, tt.want(p), f(p))
			}
		})
	}

	_, err := Lookup("wobble.out")
	assert.Error(t, err)
	_, err = Lookup("wobble")
	assert.Error(t, err)
}
