package tween

import (
	"fmt"
	"strings"

	"github.com/fogleman/ease"
)

var eases = map[string]Func{
	"none":   ease.Linear,
	"linear": ease.Linear,

	"power0.in":    ease.Linear,
	"power0.out":   ease.Linear,
	"power0.inout": ease.Linear,

	"power1.in":    ease.InQuad,
	"power1.out":   ease.OutQuad,
	"power1.inout": ease.InOutQuad,
	"quad.in":      ease.InQuad,
	"quad.out":     ease.OutQuad,
	"quad.inout":   ease.InOutQuad,

	"power2.in":    ease.InCubic,
	"power2.out":   ease.OutCubic,
	"power2.inout": ease.InOutCubic,
	"cubic.in":     ease.InCubic,
	"cubic.out":    ease.OutCubic,
	"cubic.inout":  ease.InOutCubic,

	"power3.in":    ease.InQuart,
	"power3.out":   ease.OutQuart,
	"power3.inout": ease.InOutQuart,
	"quart.in":     ease.InQuart,
	"quart.out":    ease.OutQuart,
	"quart.inout":  ease.InOutQuart,

	"power4.in":    ease.InQuint,
	"power4.out":   ease.OutQuint,
	"power4.inout": ease.InOutQuint,
	"quint.in":     ease.InQuint,
	"quint.out":    ease.OutQuint,
	"quint.inout":  ease.InOutQuint,

	"sine.in":    ease.InSine,
	"sine.out":   ease.OutSine,
	"sine.inout": ease.InOutSine,

	"expo.in":    ease.InExpo,
	"expo.out":   ease.OutExpo,
	"expo.inout": ease.InOutExpo,

	"circ.in":    ease.InCirc,
	"circ.out":   ease.OutCirc,
	"circ.inout": ease.InOutCirc,

	"back.in":    ease.InBack,
	"back.out":   ease.OutBack,
	"back.inout": ease.InOutBack,

	"elastic.in":    ease.InElastic,
	"elastic.out":   ease.OutElastic,
	"elastic.inout": ease.InOutElastic,

	"bounce.in":    ease.InBounce,
	"bounce.out":   ease.OutBounce,
	"bounce.inout": ease.InOutBounce,
}

// Lookup resolves a gsap style ease name such as "bounce.out" or
// "power1.inOut". A bare family name means its ".out" variant.
func Lookup(name string) (Func, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return ease.Linear, nil
	}
	if f, ok := eases[key]; ok {
		return f, nil
	}
	if f, ok := eases[key+".out"]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("unknown ease %q", name)
}
