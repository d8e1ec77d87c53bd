//go:build !ebiten

package gui

// Run reports that window support was not compiled in.
func Run(Options) error {
	return ErrUnavailable
}
