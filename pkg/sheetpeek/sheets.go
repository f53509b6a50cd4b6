package sheetpeek

import (
	"fmt"
	"strconv"
	"strings"
)

// ResolveSheet maps a sheet reference to a sheet name and its 0-based position.
// An exact name match wins over a numeric position so that sheets named
// like "2023" stay reachable.
func ResolveSheet(names []string, ref, hint string) (string, int, error) {
	if len(names) == 0 {
		return "", -1, fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
	}
	if ref == "" {
		return names[0], 0, nil
	}

	for i, name := range names {
		if name == ref {
			return name, i, nil
		}
	}

	if idx, err := strconv.Atoi(ref); err == nil {
		if idx < 0 || idx >= len(names) {
			return "", -1, fmt.Errorf("%w: index %d out of range, workbook has %d sheet(s)", ErrSheetNotFound, idx, len(names))
		}
		return names[idx], idx, nil
	}

	if strings.EqualFold(ref, SheetAuto) {
		idx := PrimarySheet(names, hint)
		return names[idx], idx, nil
	}

	return "", -1, fmt.Errorf("%w: %q", ErrSheetNotFound, ref)
}

// PrimarySheet returns the position of the sheet most likely to hold the main
// data: the first sheet whose name contains hint (case-insensitive), else the
// second sheet, else the first. Returns -1 for an empty list.
func PrimarySheet(names []string, hint string) int {
	if len(names) == 0 {
		return -1
	}
	if hint != "" {
		needle := strings.ToLower(hint)
		for i, name := range names {
			if strings.Contains(strings.ToLower(name), needle) {
				return i
			}
		}
	}
	if len(names) > 1 {
		return 1
	}
	return 0
}
