package hud

import "deepsea/internal/sim"

type tee []sim.HUD

// Tee fans every call out to each non-nil collaborator in order.
func Tee(huds ...sim.HUD) sim.HUD {
	out := make(tee, 0, len(huds))
	for _, h := range huds {
		if h != nil {
			out = append(out, h)
		}
	}
	return out
}

func (t tee) SetValue(el sim.Element, v float64) {
	for _, h := range t {
		h.SetValue(el, v)
	}
}

func (t tee) Notify(n sim.Notification) {
	for _, h := range t {
		h.Notify(n)
	}
}

func (t tee) SetFlashlight(on bool) {
	for _, h := range t {
		h.SetFlashlight(on)
	}
}
