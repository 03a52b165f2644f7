//go:build !ebiten

package ui

// TuningPanel is a no-op placeholder for headless builds.
type TuningPanel struct{}

// NewTuningPanel returns nil in the headless build.
func NewTuningPanel(any, int) *TuningPanel { return nil }

// Width is zero in the headless build.
func (tp *TuningPanel) Width() int { return 0 }

// Update is a no-op in the headless build.
func (tp *TuningPanel) Update(int) {}

// Draw is a no-op in the headless build.
func (tp *TuningPanel) Draw(any, int, int) {}
