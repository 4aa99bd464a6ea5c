package main

import "strings"

const subscriptZero = '₀'

// FormatLabel renders every digit of a chemical formula style label as a
// subscript, so "Fe2O3" becomes "Fe₂O₃".
func FormatLabel(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return subscriptZero + (r - '0')
		}
		return r
	}, s)
}

// StripLabelMarkup undoes FormatLabel.
func StripLabelMarkup(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= subscriptZero && r <= subscriptZero+9 {
			return '0' + (r - subscriptZero)
		}
		return r
	}, s)
}

func formatLabels(labels []string) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = FormatLabel(l)
	}
	return out
}
