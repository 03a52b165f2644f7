// Package hud holds the display state behind the HUD widgets: readouts, the
// active notification and the flashlight indicator. Front-ends draw from it.
package hud

import (
	"time"

	"deepsea/internal/sim"
)

// Notice is a notification with its dismiss deadline.
type Notice struct {
	sim.Notification
	Until time.Time
}

// Panel implements sim.HUD. A new notification replaces the one on screen.
type Panel struct {
	values     map[sim.Element]float64
	notice     *Notice
	flashlight bool
	shown      int

	now func() time.Time
}

// NewPanel returns an empty panel using the wall clock.
func NewPanel() *Panel {
	return &Panel{values: make(map[sim.Element]float64), now: time.Now}
}

// SetClock replaces the time source used for deadlines.
func (p *Panel) SetClock(now func() time.Time) {
	if now != nil {
		p.now = now
	}
}

func (p *Panel) SetValue(el sim.Element, v float64) { p.values[el] = v }

func (p *Panel) Notify(n sim.Notification) {
	p.notice = &Notice{Notification: n, Until: p.now().Add(n.Duration)}
	p.shown++
}

func (p *Panel) SetFlashlight(on bool) { p.flashlight = on }

// Value returns a readout and whether it has been set.
func (p *Panel) Value(el sim.Element) (float64, bool) {
	v, ok := p.values[el]
	return v, ok
}

// Flashlight reports the indicator state.
func (p *Panel) Flashlight() bool { return p.flashlight }

// Notice returns the notification on screen, if any.
func (p *Panel) Notice() (Notice, bool) {
	if p.notice == nil {
		return Notice{}, false
	}
	return *p.notice, true
}

// Shown counts notifications received since creation.
func (p *Panel) Shown() int { return p.shown }

// Update dismisses the notification once its deadline has passed.
func (p *Panel) Update() {
	if p.notice != nil && !p.now().Before(p.notice.Until) {
		p.notice = nil
	}
}

// Close drops any pending notification.
func (p *Panel) Close() {
	p.notice = nil
}
