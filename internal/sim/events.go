package sim

import "time"

// Element names a HUD readout.
type Element string

const (
	ElementOxygen    Element = "oxygen"
	ElementDepth     Element = "depth"
	ElementDepthFill Element = "depth-fill"
	ElementCompass   Element = "compass"
	ElementSpeed     Element = "speed"
)

// NoticeKind distinguishes notification flavours.
type NoticeKind uint8

const (
	NoticeDiscovery NoticeKind = iota
	NoticeWarning
)

// Notification is a one-shot panel shown for Duration.
type Notification struct {
	Kind     NoticeKind
	Title    string
	Body     string
	Duration time.Duration
}

// HUD is the collaborator that displays readouts. Implementations ignore
// elements they do not show.
type HUD interface {
	SetValue(el Element, value float64)
	Notify(n Notification)
	SetFlashlight(on bool)
}

type nopHUD struct{}

func (nopHUD) SetValue(Element, float64) {}
func (nopHUD) Notify(Notification)       {}
func (nopHUD) SetFlashlight(bool)        {}
