package main

import (
	"math"

	"github.com/pkg/errors"
)

// Scale is the total every normalized composition sums to.
const Scale = 100.0

// Normalize rescales every row so its components sum to Scale.
func Normalize(rows [][]float64) ([][]float64, error) {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		if sum == 0 {
			return nil, errors.Wrapf(ErrZeroSum, "row %d", i+1)
		}
		n := make([]float64, len(row))
		for j, v := range row {
			n[j] = v / sum * Scale
		}
		out[i] = n
	}
	return out, nil
}

// Purity is the share of the dominant component of a normalized row.
func Purity(row []float64) float64 {
	p := 0.0
	for i, v := range row {
		if i == 0 || v > p {
			p = v
		}
	}
	return p
}

// Domain is the purity range from a perfectly mixed composition (Low) to a
// fully dominated one (High).
type Domain struct {
	Low, High float64
}

var referenceDomains = map[int]Domain{
	3: {Scale / 3, 2 * Scale / 3},
	4: {Scale / 4, Scale},
}

func ReferenceDomain(components int) (Domain, error) {
	d, ok := referenceDomains[components]
	if !ok {
		return Domain{}, errors.Wrapf(ErrColumnCount, "no reference domain for %d components", components)
	}
	return d, nil
}

// Fraction maps a purity into [0,1], clamping values outside the domain.
func (d Domain) Fraction(purity float64) float64 {
	t := (purity - d.Low) / (d.High - d.Low)
	if t < 0 || math.IsNaN(t) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Fractions normalizes rows and returns the clamped purity fraction of each.
func Fractions(rows [][]float64, components int) (normalized [][]float64, fractions []float64, err error) {
	d, err := ReferenceDomain(components)
	if err != nil {
		return nil, nil, err
	}
	normalized, err = Normalize(rows)
	if err != nil {
		return nil, nil, err
	}
	fractions = make([]float64, len(normalized))
	for i, row := range normalized {
		fractions[i] = d.Fraction(Purity(row))
	}
	return normalized, fractions, nil
}
