package imageio

import (
	"fmt"
	"os"
	"strings"
)

// Save writes the framebuffer to path, choosing the encoder by the
// path's extension: ".csv", ".hdr", ".pfm", or (the default) PNG.
func (f *Framebuffer) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: creating %s: %w", path, err)
	}

	var encErr error
	switch strings.ToLower(fileExt(path)) {
	case ".csv":
		encErr = f.SaveCSV(file)
	case ".hdr":
		encErr = f.SaveHDR(file)
	case ".pfm":
		encErr = f.SavePFM(file)
	default:
		encErr = f.SavePNG(file)
	}
	if encErr != nil {
		return fmt.Errorf("imageio: encoding %s: %w", path, encErr)
	}
	return file.Close()
}

func fileExt(path string) string {
	for i := len(path) - 1; i >= 0 && path[i] != '/' && path[i] != '\\'; i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}
