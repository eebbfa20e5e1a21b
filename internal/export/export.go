package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"LashMap/internal/state"
)

// PNGScale is the pixel density File uses for PNG output.
const PNGScale = 2.0

// File picks the format from the extension of path.
func File(path string, s state.Snapshot, vp state.Viewport) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		return PDF(path, s, vp)
	case ".png":
		return PNG(path, s, vp, PNGScale)
	default:
		return fmt.Errorf("unsupported export format %q", ext)
	}
}
