package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/extrame/xls"
)

// xlsCharset only applies to BIFF5 codepage strings; BIFF8 text is UTF-16.
const xlsCharset = "utf-8"

// XLS reads legacy BIFF workbooks through extrame/xls.
type XLS struct {
	wb     *xls.WorkBook
	closer io.Closer
}

// OpenXLS opens an .xls workbook.
// The BIFF parser panics on some malformed input; that is reported as an error.
func OpenXLS(path string) (x *XLS, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			x, err = nil, fmt.Errorf("parse xls: %v", r)
		}
		if err != nil {
			f.Close()
		}
	}()

	wb, err := xls.OpenReader(f, xlsCharset)
	if err != nil {
		return nil, err
	}
	if wb == nil {
		return nil, errors.New("no Workbook stream in compound file")
	}
	return &XLS{wb: wb, closer: f}, nil
}

// SheetNames returns sheet names in workbook order.
func (x *XLS) SheetNames() []string {
	n := x.wb.NumSheets()
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if ws := x.wb.GetSheet(i); ws != nil {
			names = append(names, ws.Name)
		}
	}
	return names
}

// ReadRows returns at most limit leading rows of the named sheet.
func (x *XLS) ReadRows(sheet string, limit int) ([][]string, error) {
	ws := x.sheet(sheet)
	if ws == nil {
		return nil, fmt.Errorf("sheet %s does not exist", sheet)
	}

	var result [][]string
	last := int(ws.MaxRow)
	for r := 0; r <= last && len(result) < limit; r++ {
		row := rowAt(ws, r)
		if row == nil {
			result = append(result, nil)
			continue
		}
		cells := make([]string, 0, row.LastCol()+1)
		for c := 0; c <= row.LastCol(); c++ {
			cells = append(cells, row.Col(c))
		}
		result = append(result, trimTrailingEmpty(cells))
	}

	if len(result) < limit {
		result = trimTrailingEmptyRows(result)
	}
	return result, nil
}

// rowAt returns nil for rows the sheet has no record of.
// WorkSheet.Row dereferences the missing map entry.
func rowAt(ws *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return ws.Row(i)
}

func (x *XLS) sheet(name string) *xls.WorkSheet {
	for i := 0; i < x.wb.NumSheets(); i++ {
		if ws := x.wb.GetSheet(i); ws != nil && ws.Name == name {
			return ws
		}
	}
	return nil
}

// Close closes the underlying file.
func (x *XLS) Close() error {
	if x.closer == nil {
		return nil
	}
	return x.closer.Close()
}
