package colortool

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/k1LoW/errors"
)

// WritePNG encodes img as PNG and writes it to path, replacing any existing file.
// The data is written to a temporary file in the same directory first so a
// failed write never leaves a truncated image at path.
func WritePNG(path string, img image.Image) (err error) {
	defer func() {
		if err != nil {
			err = errors.WithStack(fmt.Errorf("%w: could not write to %s: %w", ErrWrite, path, err))
		}
	}()
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	if err := f.Chmod(0o644); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
