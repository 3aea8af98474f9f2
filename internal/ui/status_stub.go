//go:build !ebiten

package ui

// Status is a no-op placeholder for headless builds.
type Status struct{}

// NewStatus constructs a stub status overlay.
func NewStatus() *Status { return &Status{} }

// Draw is a no-op in headless builds.
func (s *Status) Draw(any, bool, int) {}
