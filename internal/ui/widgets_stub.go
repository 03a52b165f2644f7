//go:build !ebiten

package ui

// Widgets is a no-op placeholder for headless builds.
type Widgets struct{}

// NewWidgets returns nil in the headless build.
func NewWidgets(any, any) *Widgets { return nil }

// Draw is a no-op in the headless build.
func (w *Widgets) Draw(any, int, int, any, bool) {}
