package main

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure is the input of a renderer: normalized compositions with their
// colors, one formatted label per component and a title.
type Figure struct {
	Points    [][]float64
	Fractions []float64
	Colors    []colorful.Color
	Labels    []string
	Title     string
}

func (f *Figure) Components() int {
	return len(f.Labels)
}

type renderer func(fig *Figure) (*plot.Plot, error)

// renderers is keyed by the number of components a renderer draws.
var renderers = map[int]renderer{}

func Render(fig *Figure) (*plot.Plot, error) {
	renderFn, ok := renderers[fig.Components()]
	if !ok {
		return nil, errors.Wrapf(ErrColumnCount, "cannot render %d components", fig.Components())
	}
	for i, pt := range fig.Points {
		if len(pt) != fig.Components() {
			return nil, errors.Errorf("point %d has %d components, expected %d", i+1, len(pt), fig.Components())
		}
	}
	if len(fig.Colors) != len(fig.Points) {
		return nil, errors.Errorf("%d colors for %d points", len(fig.Colors), len(fig.Points))
	}
	return renderFn(fig)
}

// Rasterize draws p into an in-memory image of the given pixel size.
func Rasterize(p *plot.Plot, size figureSize) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	canvas := vgimg.NewWith(vgimg.UseImage(img))
	p.Draw(draw.New(canvas))
	return img
}

// figureSize is a pixel size given as WIDTHxHEIGHT.
type figureSize struct {
	Width  int
	Height int
}

var defaultFigureSize = figureSize{800, 600}

// lengths converts the pixel size to vg lengths at the raster canvases'
// default resolution.
func (s figureSize) lengths() (vg.Length, vg.Length) {
	px := vg.Inch / vgimg.DefaultDPI
	return vg.Length(s.Width) * px, vg.Length(s.Height) * px
}

func (s *figureSize) Set(value string) error {
	parts := strings.SplitN(strings.ToLower(value), "x", 2)
	if len(parts) != 2 {
		return fmt.Errorf("expected WIDTHxHEIGHT got '%s'", value)
	}
	width, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || width <= 0 {
		return fmt.Errorf("expected WIDTHxHEIGHT, WIDTH must be a positive number, got '%s'", parts[0])
	}
	height, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || height <= 0 {
		return fmt.Errorf("expected WIDTHxHEIGHT, HEIGHT must be a positive number, got '%s'", parts[1])
	}
	s.Width = int(width)
	s.Height = int(height)
	return nil
}

func (s *figureSize) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
