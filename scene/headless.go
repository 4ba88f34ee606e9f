package scene

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window runner. A zero Hz runs at the
// director's own rate.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64
}

// RunHeadless drives d without a window: every tick it applies queued pointer
// events and renders one frame. It stops after cfg.Ticks frames, or when ctx
// is done if cfg.Ticks is zero. Tweens advance by the ticker period, so their
// durations hold in wall-clock time at any rate.
func RunHeadless(ctx context.Context, d *Director, inbox <-chan PointerEvent, cfg HeadlessConfig) error {
	period := d.tick
	if cfg.Hz > 0 {
		period = time.Second / time.Duration(cfg.Hz)
		if period <= 0 {
			return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
		}
		d.tick = period
	}
	t := time.NewTicker(period)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := d.Step(ctx, inbox); err != nil {
				return err
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
