package fileutil

import (
	"path/filepath"
	"strings"
)

// Filename returns the last path element without extension and dir path.
// For example, "/mnt/my_disk/amelia.jpg" will be converted to "amelia".
func Filename(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
