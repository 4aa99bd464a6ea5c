package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"gonum.org/v1/plot"
)

// DefaultImageExt is appended to save paths that name no format.
const DefaultImageExt = ".jpg"

var ErrImageFormat = errors.New("unsupported image format")

// plotFormats are written by plot.Save.
var plotFormats = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".tif": true, ".tiff": true,
	".svg": true, ".pdf": true, ".eps": true,
}

// withDefaultExt returns path with DefaultImageExt added if it has no
// extension.
func withDefaultExt(path string) string {
	if filepath.Ext(path) == "" {
		return path + DefaultImageExt
	}
	return path
}

// SaveFigure writes p to path in the format named by the path's extension.
func SaveFigure(p *plot.Plot, size figureSize, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case plotFormats[ext]:
		w, h := size.lengths()
		if err := p.Save(w, h, path); err != nil {
			return errors.Wrapf(err, "save %s", path)
		}
		return nil
	case ext == ".bmp":
		return saveBMP(p, size, path)
	}
	return errors.Wrapf(ErrImageFormat, "%q", ext)
}

func saveBMP(p *plot.Plot, size figureSize, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "save %s", path)
		}
	}()
	if err := bmp.Encode(f, Rasterize(p, size)); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}
