package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// writeInspection prints one line per row of fig: the normalized
// components, purity, purity fraction and the color it maps to.
func writeInspection(out io.Writer, fig *Figure) error {
	header := append([]string{"#"}, fig.Labels...)
	header = append(header, "purity", "t", "color")
	rows := [][]string{header}
	for i, pt := range fig.Points {
		row := []string{strconv.Itoa(i + 1)}
		for _, v := range pt {
			row = append(row, strconv.FormatFloat(v, 'f', 3, 64))
		}
		row = append(row,
			strconv.FormatFloat(Purity(pt), 'f', 3, 64),
			strconv.FormatFloat(fig.Fractions[i], 'f', 4, 64),
			fig.Colors[i].Hex(),
		)
		rows = append(rows, row)
	}

	widths := make([]int, len(header))
	for _, row := range rows {
		for j, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}

	w := bufio.NewWriter(out)
	for _, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			if j == len(row)-1 {
				cells[j] = cell
			} else {
				cells[j] = runewidth.FillLeft(cell, widths[j])
			}
		}
		fmt.Fprintln(w, strings.Join(cells, "  "))
	}
	return w.Flush()
}
