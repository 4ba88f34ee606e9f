package scene

// State is a copy of the director's observable values after a frame.
type State struct {
	Frame     uint64  `json:"frame"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Aspect    float64 `json:"aspect"`
	Position  Vec3    `json:"position"`
	Rotation  Vec3    `json:"rotation"`
	Scale     Vec3    `json:"scale"`
	SpinSpeed float64 `json:"spinSpeed"`
	Textured  bool    `json:"textured"`
}

// A StateSource hands out the latest State. Implementations are safe for
// concurrent use.
type StateSource interface {
	Snapshot() State
}

// A PointerEvent is a press at X, Y. Normalized events carry coordinates in
// [0, 1] relative to the viewport instead of pixels.
type PointerEvent struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Normalized bool    `json:"-"`
	Source     string  `json:"-"`
}

// NewInbox creates the channel remote sources use to queue pointer events
// for the loop goroutine.
func NewInbox(size int) chan PointerEvent {
	return make(chan PointerEvent, size)
}

// Offer queues ev without blocking and reports whether it was accepted.
func Offer(inbox chan<- PointerEvent, ev PointerEvent) bool {
	select {
	case inbox <- ev:
		return true
	default:
		return false
	}
}
