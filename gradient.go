package main

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// BlendMode names the color space two gradient keypoints are blended in.
type BlendMode string

const (
	BlendRGB       BlendMode = "rgb"
	BlendLinearRGB BlendMode = "linear-rgb"
	BlendHCL       BlendMode = "hcl"
	BlendLab       BlendMode = "lab"
	BlendLuv       BlendMode = "luv"
)

var blenders = map[BlendMode]func(c1, c2 colorful.Color, t float64) colorful.Color{
	BlendRGB:       colorful.Color.BlendRgb,
	BlendLinearRGB: colorful.Color.BlendLinearRgb,
	BlendHCL:       colorful.Color.BlendHcl,
	BlendLab:       colorful.Color.BlendLab,
	BlendLuv:       colorful.Color.BlendLuv,
}

func BlendModes() []string {
	modes := make([]string, 0, len(blenders))
	for m := range blenders {
		modes = append(modes, string(m))
	}
	sort.Strings(modes)
	return modes
}

func ParseBlendMode(s string) (BlendMode, error) {
	if _, ok := blenders[BlendMode(s)]; !ok {
		return "", fmt.Errorf("unknown blend mode %q, expected one of %v", s, BlendModes())
	}
	return BlendMode(s), nil
}

type GradientTable []struct {
	Col colorful.Color
	Pos float64
}

// NewRamp returns the two keypoint gradient running from start at 0 to end at 1.
func NewRamp(start, end colorful.Color) GradientTable {
	return GradientTable{{start, 0}, {end, 1}}
}

// GetInterpolatedColorFor blends the two keypoints around t. Keypoints must
// be sorted by position. Positions before the first keypoint get its color,
// positions after the last get the last color.
func (self GradientTable) GetInterpolatedColorFor(t float64, mode BlendMode) colorful.Color {
	blend, ok := blenders[mode]
	if !ok {
		blend = colorful.Color.BlendRgb
	}
	if t <= self[0].Pos {
		return self[0].Col
	}
	if t >= self[len(self)-1].Pos {
		return self[len(self)-1].Col
	}
	for i := 0; i < len(self)-1; i++ {
		c1 := self[i]
		c2 := self[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			t := (t - c1.Pos) / (c2.Pos - c1.Pos)
			return blend(c1.Col, c2.Col, t).Clamped()
		}
	}
	return self[len(self)-1].Col
}

func MustParseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("MustParseHex: " + err.Error())
	}
	return c
}
