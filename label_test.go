package main

import "testing"

func TestFormatLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Fe2O3", "Fe₂O₃"},
		{"Al2O3", "Al₂O₃"},
		{"Ca10(PO4)6(OH)2", "Ca₁₀(PO₄)₆(OH)₂"},
		{"Quartz", "Quartz"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormatLabel(tt.in); got != tt.want {
			t.Errorf("FormatLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatLabelIdempotentWithoutDigits(t *testing.T) {
	for _, s := range []string{"Olivine", "K-feldspar", "Fe₂O₃"} {
		once := FormatLabel(s)
		if twice := FormatLabel(once); twice != once {
			t.Errorf("FormatLabel not idempotent on %q: %q then %q", s, once, twice)
		}
	}
}

func TestStripLabelMarkupRoundTrip(t *testing.T) {
	for _, s := range []string{"Al2O3", "SiO2", "H2O", "Na2O+K2O", "Mg"} {
		if got := StripLabelMarkup(FormatLabel(s)); got != s {
			t.Errorf("round trip of %q gave %q", s, got)
		}
	}
}
