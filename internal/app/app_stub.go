//go:build !ebiten

package app

import (
	"fmt"

	"ocean-fx/internal/config"
)

// Run reports that the window host is not compiled in.
func Run(*config.Config, int64) error {
	return fmt.Errorf("app.Run requires building with the 'ebiten' tag")
}
