package main

import (
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func init() {
	renderers[3] = plotTernary
	renderers[4] = plotQuaternary
}

var (
	edgeColor  = color.Black
	gridColor  = color.RGBA{0, 0, 255, 96}
	background = color.White
)

const (
	pointRadius = vg.Length(3.5)
	labelGap    = vg.Length(12)
	margin      = vg.Length(36)
)

func newFigurePlot(fig *Figure) *plot.Plot {
	p := plot.New()
	p.HideAxes()
	p.BackgroundColor = background
	p.Title.Text = fig.Title
	p.Title.TextStyle.Font.Size = vg.Points(20)
	p.Title.Padding = vg.Points(8)
	return p
}

func plotTernary(fig *Figure) (*plot.Plot, error) {
	p := newFigurePlot(fig)
	h := Scale * math.Sqrt(3) / 2
	s := &Simplex{
		Figure: fig,
		Vertices: [][3]float64{
			{0, 0, 0},
			{Scale, 0, 0},
			{Scale / 2, h, 0},
		},
		GridStep: 10,
		TickStep: 20,
	}
	p.Add(s)
	return p, nil
}

func plotQuaternary(fig *Figure) (*plot.Plot, error) {
	p := newFigurePlot(fig)
	s := &Simplex{
		Figure: fig,
		Vertices: [][3]float64{
			{0, 0, 0},
			{Scale, 0, 0},
			{Scale / 2, Scale * math.Sqrt(3) / 2, 0},
			{Scale / 2, Scale * math.Sqrt(3) / 6, Scale * math.Sqrt(2.0/3.0)},
		},
		Azimuth:   -20 * math.Pi / 180,
		Elevation: 20 * math.Pi / 180,
	}
	p.Add(s)
	return p, nil
}

// Simplex draws compositions inside a triangle or tetrahedron. Each
// component owns one vertex; a point sits at the composition weighted mean
// of the vertices. Vertices are viewed orthographically after turning the
// figure by Azimuth around the z axis and tilting it by Elevation.
type Simplex struct {
	Figure   *Figure
	Vertices [][3]float64

	Azimuth   float64
	Elevation float64

	// GridStep and TickStep are in percent. Zero disables grid lines or
	// tick labels.
	GridStep int
	TickStep int
}

// project maps a composition summing to Scale onto the view plane.
func (s *Simplex) project(comp []float64) (x, y float64) {
	var p [3]float64
	for i, w := range comp {
		for k := range p {
			p[k] += w * s.Vertices[i][k] / Scale
		}
	}
	ca, sa := math.Cos(s.Azimuth), math.Sin(s.Azimuth)
	rx := p[0]*ca - p[1]*sa
	ry := p[0]*sa + p[1]*ca
	if s.Elevation == 0 {
		return rx, ry
	}
	return rx, p[2]*math.Cos(s.Elevation) + ry*math.Sin(s.Elevation)
}

func (s *Simplex) vertex(i int) (x, y float64) {
	return s.project(s.corner(i))
}

func (s *Simplex) corner(i int) []float64 {
	comp := make([]float64, len(s.Vertices))
	comp[i] = Scale
	return comp
}

// DataRange implements plot.DataRanger.
func (s *Simplex) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for i := range s.Vertices {
		x, y := s.vertex(i)
		xmin, xmax = math.Min(xmin, x), math.Max(xmax, x)
		ymin, ymax = math.Min(ymin, y), math.Max(ymax, y)
	}
	return
}

// fit returns a transform placing the simplex in the middle of c with the
// same scale on both axes.
func (s *Simplex) fit(c draw.Canvas) func(x, y float64) vg.Point {
	xmin, xmax, ymin, ymax := s.DataRange()
	r := c.Rectangle
	w := r.Max.X - r.Min.X - 2*margin
	h := r.Max.Y - r.Min.Y - 2*margin
	scale := math.Min(float64(w)/(xmax-xmin), float64(h)/(ymax-ymin))
	ox := r.Min.X + (r.Max.X-r.Min.X)/2 - vg.Length((xmax-xmin)*scale/2)
	oy := r.Min.Y + (r.Max.Y-r.Min.Y)/2 - vg.Length((ymax-ymin)*scale/2)
	return func(x, y float64) vg.Point {
		return vg.Point{
			X: ox + vg.Length((x-xmin)*scale),
			Y: oy + vg.Length((y-ymin)*scale),
		}
	}
}

// Plot implements plot.Plotter.
func (s *Simplex) Plot(c draw.Canvas, plt *plot.Plot) {
	tr := s.fit(c)
	at := func(comp []float64) vg.Point {
		return tr(s.project(comp))
	}
	n := len(s.Vertices)

	centroid := make([]float64, n)
	for i := range centroid {
		centroid[i] = Scale / float64(n)
	}
	center := at(centroid)

	if s.GridStep > 0 {
		grid := draw.LineStyle{Color: gridColor, Width: vg.Points(0.5)}
		for i := 0; i < n; i++ {
			j, k := (i+1)%n, (i+2)%n
			for v := s.GridStep; v < int(Scale); v += s.GridStep {
				a := make([]float64, n)
				b := make([]float64, n)
				a[i], a[j] = float64(v), Scale-float64(v)
				b[i], b[k] = float64(v), Scale-float64(v)
				c.StrokeLines(grid, []vg.Point{at(a), at(b)})
			}
		}
	}

	edge := draw.LineStyle{Color: edgeColor, Width: vg.Points(1.5)}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			c.StrokeLines(edge, []vg.Point{at(s.corner(i)), at(s.corner(j))})
		}
	}

	if s.TickStep > 0 {
		tick := plt.Title.TextStyle
		tick.Font.Size = vg.Points(8)
		tick.XAlign = text.XCenter
		tick.YAlign = text.YCenter
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			for v := s.TickStep; v < int(Scale); v += s.TickStep {
				comp := make([]float64, n)
				comp[i], comp[j] = float64(v), Scale-float64(v)
				half := make([]float64, n)
				half[i], half[j] = Scale/2, Scale/2
				pt := outward(center, at(half), at(comp), labelGap*0.75)
				c.FillText(tick, pt, strconv.Itoa(v))
			}
		}
	}

	label := plt.Title.TextStyle
	label.Font.Size = vg.Points(11)
	label.XAlign = text.XCenter
	label.YAlign = text.YCenter
	for i, l := range s.Figure.Labels {
		corner := at(s.corner(i))
		c.FillText(label, outward(center, corner, corner, labelGap+label.Font.Size), l)
	}

	for i, comp := range s.Figure.Points {
		glyph := draw.GlyphStyle{
			Color:  s.Figure.Colors[i],
			Radius: pointRadius,
			Shape:  draw.CircleGlyph{},
		}
		c.DrawGlyph(glyph, at(comp))
	}
}

// outward moves pt by d along the direction from center to dir.
func outward(center, dir, pt vg.Point, d vg.Length) vg.Point {
	dx, dy := float64(dir.X-center.X), float64(dir.Y-center.Y)
	l := math.Hypot(dx, dy)
	if l == 0 {
		return pt
	}
	return vg.Point{
		X: pt.X + vg.Length(dx/l)*d,
		Y: pt.Y + vg.Length(dy/l)*d,
	}
}
