package main

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

const DefaultTitle = "Plot Title"

var (
	DefaultStartColor = MustParseHex("#0000FF")
	DefaultEndColor   = MustParseHex("#FF0000")

	ErrNotLoaded  = errors.New("no table loaded")
	ErrEmptyLabel = errors.New("all labels must be provided")
	ErrEmptyTitle = errors.New("the plot title cannot be empty")
)

// State is everything a render depends on. Handlers never modify the
// receiver; they return the next State, or an error and leave the caller
// holding the previous one.
type State struct {
	Table  *Table
	Labels []string
	Start  colorful.Color
	End    colorful.Color
	Blend  BlendMode
	Title  string
}

func NewState() State {
	return State{
		Start: DefaultStartColor,
		End:   DefaultEndColor,
		Blend: BlendRGB,
		Title: DefaultTitle,
	}
}

func (s State) Loaded() bool {
	return s.Table != nil
}

// Load replaces the table and labels with the contents of path. Colors,
// blend mode and title carry over.
func (s State) Load(path string) (State, error) {
	t, err := LoadTable(path)
	if err != nil {
		return s, err
	}
	return s.WithTable(t), nil
}

func (s State) WithTable(t *Table) State {
	s.Table = t
	s.Labels = append([]string(nil), t.Header...)
	return s
}

func (s State) WithStartColor(hex string) (State, error) {
	c, err := parseColor(hex)
	if err != nil {
		return s, err
	}
	s.Start = c
	return s, nil
}

func (s State) WithEndColor(hex string) (State, error) {
	c, err := parseColor(hex)
	if err != nil {
		return s, err
	}
	s.End = c
	return s, nil
}

func (s State) WithBlend(mode string) (State, error) {
	m, err := ParseBlendMode(mode)
	if err != nil {
		return s, err
	}
	s.Blend = m
	return s, nil
}

// WithLabels renames the axes. There must be one label per loaded column
// and none may be empty.
func (s State) WithLabels(labels []string) (State, error) {
	if !s.Loaded() {
		return s, ErrNotLoaded
	}
	if len(labels) != len(s.Labels) {
		return s, errors.Errorf("expected %d labels, got %d", len(s.Labels), len(labels))
	}
	for _, l := range labels {
		if l == "" {
			return s, ErrEmptyLabel
		}
	}
	s.Labels = append([]string(nil), labels...)
	return s, nil
}

func (s State) WithTitle(title string) (State, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return s, ErrEmptyTitle
	}
	s.Title = title
	return s, nil
}

func (s State) Ramp() GradientTable {
	return NewRamp(s.Start, s.End)
}

// Figure computes what a renderer needs: normalized points, their purity
// colors and the formatted labels.
func (s State) Figure() (*Figure, error) {
	if !s.Loaded() {
		return nil, ErrNotLoaded
	}
	points, fractions, err := Fractions(s.Table.Rows, s.Table.Components())
	if err != nil {
		return nil, err
	}
	ramp := s.Ramp()
	fig := &Figure{
		Points:    points,
		Fractions: fractions,
		Colors:    make([]colorful.Color, len(points)),
		Labels:    formatLabels(s.Labels),
		Title:     s.Title,
	}
	for i, t := range fractions {
		fig.Colors[i] = ramp.GetInterpolatedColorFor(t, s.Blend)
	}
	return fig, nil
}

func parseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, errors.Wrapf(err, "color %q", s)
	}
	return c, nil
}
