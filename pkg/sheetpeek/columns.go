package sheetpeek

import (
	"fmt"
	"strconv"
)

// positionalLabels returns "0".."width-1".
func positionalLabels(width int) []string {
	labels := make([]string, width)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	return labels
}

// headerLabels turns a header row into unique column labels.
// Blank cells become "Unnamed: <i>"; repeats get ".1", ".2", ... suffixes.
func headerLabels(row []string) []string {
	labels := make([]string, len(row))
	used := make(map[string]bool, len(row))
	counts := make(map[string]int, len(row))

	for i, cell := range row {
		base := cell
		if base == "" {
			base = fmt.Sprintf("Unnamed: %d", i)
		}
		label := base
		for used[label] {
			counts[base]++
			label = fmt.Sprintf("%s.%d", base, counts[base])
		}
		used[label] = true
		labels[i] = label
	}
	return labels
}

// padRow extends a row with empty cells up to width.
func padRow(row []string, width int) []string {
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
