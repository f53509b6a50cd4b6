package reader

import (
	"github.com/xuri/excelize/v2"
)

// XLSX reads Office Open XML workbooks through excelize.
type XLSX struct {
	f *excelize.File
}

// OpenXLSX opens an .xlsx/.xlsm workbook.
func OpenXLSX(path string) (*XLSX, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &XLSX{f: f}, nil
}

// SheetNames returns sheet names in workbook order.
func (x *XLSX) SheetNames() []string {
	return x.f.GetSheetList()
}

// ReadRows streams the sheet and stops after limit rows.
func (x *XLSX) ReadRows(sheet string, limit int) ([][]string, error) {
	rows, err := x.f.Rows(sheet)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result [][]string
	exhausted := false
	for len(result) < limit {
		if !rows.Next() {
			exhausted = true
			break
		}
		cols, err := rows.Columns()
		if err != nil {
			return nil, err
		}
		result = append(result, trimTrailingEmpty(cols))
	}
	if err := rows.Error(); err != nil {
		return nil, err
	}

	// Styled but blank rows at the end of a sheet are not data.
	if exhausted {
		result = trimTrailingEmptyRows(result)
	}
	return result, nil
}

// Close closes the workbook.
func (x *XLSX) Close() error {
	return x.f.Close()
}
