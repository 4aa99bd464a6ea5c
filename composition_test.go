package main

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestNormalizeSumsToScale(t *testing.T) {
	rows := [][]float64{
		{1, 2, 3},
		{50, 25, 25},
		{0.001, 0.002, 1000},
		{7, 0, 0, 3},
		{25, 25, 25, 25},
		{1e-6, 3e-6, 2e-6, 4e-6},
	}
	norm, err := Normalize(rows)
	if err != nil {
		t.Fatal(err)
	}
	for i, row := range norm {
		if len(row) != len(rows[i]) {
			t.Fatalf("row %d has %d components, want %d", i, len(row), len(rows[i]))
		}
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		if math.Abs(sum-Scale) > 1e-9 {
			t.Errorf("row %d sums to %v, want %v", i, sum, Scale)
		}
	}
}

func TestNormalizeZeroSum(t *testing.T) {
	if _, err := Normalize([][]float64{{1, 1, 1}, {0, 0, 0}}); err == nil {
		t.Error("normalizing a zero-sum row succeeded")
	}
}

func TestPurity(t *testing.T) {
	if got := Purity([]float64{20, 70, 10}); got != 70 {
		t.Errorf("Purity = %v, want 70", got)
	}
	if got := Purity([]float64{25, 25, 25, 25}); got != 25 {
		t.Errorf("Purity = %v, want 25", got)
	}
}

func TestReferenceDomain(t *testing.T) {
	d3, err := ReferenceDomain(3)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(d3.Low-100.0/3) > eps || math.Abs(d3.High-200.0/3) > eps {
		t.Errorf("ternary domain = %+v", d3)
	}
	d4, err := ReferenceDomain(4)
	if err != nil {
		t.Fatal(err)
	}
	if d4 != (Domain{25, 100}) {
		t.Errorf("quaternary domain = %+v", d4)
	}
	for _, k := range []int{0, 2, 5} {
		if _, err := ReferenceDomain(k); err == nil {
			t.Errorf("ReferenceDomain(%d) succeeded", k)
		}
	}
}

func TestFractionClamps(t *testing.T) {
	d := Domain{25, 100}
	tests := []struct {
		purity, want float64
	}{
		{0, 0},
		{24.9, 0},
		{25, 0},
		{62.5, 0.5},
		{100, 1},
		{150, 1},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := d.Fraction(tt.purity); math.Abs(got-tt.want) > eps {
			t.Errorf("Fraction(%v) = %v, want %v", tt.purity, got, tt.want)
		}
	}
}

func TestFractionMonotonic(t *testing.T) {
	for _, k := range []int{3, 4} {
		d, _ := ReferenceDomain(k)
		prev := -1.0
		for v := 0.0; v <= Scale; v += 0.25 {
			f := d.Fraction(v)
			if f < 0 || f > 1 {
				t.Fatalf("k=%d: Fraction(%v) = %v out of [0,1]", k, v, f)
			}
			if f < prev {
				t.Fatalf("k=%d: Fraction(%v) = %v < previous %v", k, v, f, prev)
			}
			prev = f
		}
	}
}

func TestFractionsTernaryScenario(t *testing.T) {
	norm, fr, err := Fractions([][]float64{{50, 25, 25}, {33.33, 33.33, 33.34}}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if p := Purity(norm[0]); math.Abs(p-50) > eps {
		t.Errorf("row 1 purity = %v, want 50", p)
	}
	if p := Purity(norm[1]); math.Abs(p-33.34) > 1e-6 {
		t.Errorf("row 2 purity = %v, want 33.34", p)
	}
	if math.Abs(fr[0]-0.5) > eps {
		t.Errorf("row 1 t = %v, want 0.5", fr[0])
	}
	if math.Abs(fr[1]-0.0002) > 1e-5 {
		t.Errorf("row 2 t = %v, want ~0.0002", fr[1])
	}
	if fr[0] <= fr[1] {
		t.Errorf("row 1 t %v should exceed row 2 t %v", fr[0], fr[1])
	}
}

func TestFractionsBalancedQuaternary(t *testing.T) {
	_, fr, err := Fractions([][]float64{{25, 25, 25, 25}, {1, 1, 1, 1}}, 4)
	if err != nil {
		t.Fatal(err)
	}
	for i, f := range fr {
		if f != 0 {
			t.Errorf("row %d t = %v, want exactly 0", i+1, f)
		}
	}
}
