package sheetpeek

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/models"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/reader"
)

// Workbook is an opened spreadsheet file.
type Workbook struct {
	path string
	src  reader.Source
}

// Open opens the workbook at path.
func Open(path string) (*Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewSampleError("open", path, "", ErrFileNotFound)
		}
		return nil, NewSampleError("open", path, "", err)
	}

	src, err := reader.Open(path)
	if err != nil {
		// Permission and I/O failures keep their own identity.
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, NewSampleError("open", path, "", err)
		}
		return nil, NewSampleError("open", path, "", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}

	return &Workbook{path: path, src: src}, nil
}

// Close releases the workbook file.
func (w *Workbook) Close() error {
	return w.src.Close()
}

// Name returns the workbook file name (no path).
func (w *Workbook) Name() string {
	return filepath.Base(w.path)
}

// SheetNames returns sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.src.SheetNames()
}

// Sample reads the leading rows of the sheet selected by opts.Sheet.
func (w *Workbook) Sample(opts Options) (*models.Sample, error) {
	if opts.Rows <= 0 {
		return nil, NewSampleError("sample", w.path, opts.Sheet, ErrInvalidLimit)
	}

	name, idx, err := ResolveSheet(w.SheetNames(), opts.Sheet, opts.primaryHint())
	if err != nil {
		return nil, NewSampleError("sample", w.path, opts.Sheet, err)
	}

	return w.sampleSheet(name, idx, opts)
}

// Enumerate samples every sheet in workbook order. opts.Sheet is ignored.
// A sheet that fails to read is reported in its entry and does not stop
// the enumeration.
func (w *Workbook) Enumerate(opts Options) (*models.WorkbookSamples, error) {
	if opts.Rows <= 0 {
		return nil, NewSampleError("enumerate", w.path, "", ErrInvalidLimit)
	}

	names := w.SheetNames()
	result := &models.WorkbookSamples{
		BookName:   w.Name(),
		SheetNames: names,
		Sheets:     make([]models.SheetSample, 0, len(names)),
	}

	for idx, name := range names {
		entry := models.SheetSample{Name: name}
		sample, err := w.sampleSheet(name, idx, opts)
		if err != nil {
			entry.Error = err.Error()
		} else {
			entry.Sample = sample
		}
		result.Sheets = append(result.Sheets, entry)
	}

	return result, nil
}

func (w *Workbook) sampleSheet(name string, idx int, opts Options) (*models.Sample, error) {
	rows, err := w.src.ReadRows(name, opts.readLimit())
	if err != nil {
		return nil, NewSampleError("sample", w.path, name, err)
	}
	return buildSample(name, idx, rows, opts.Header), nil
}

// buildSample labels columns and pads every row to the sample width.
func buildSample(name string, idx int, rows [][]string, header bool) *models.Sample {
	width := reader.MaxWidth(rows)
	sample := &models.Sample{
		Sheet:  name,
		Index:  idx,
		Header: header,
		Range:  reader.UsedRange(rows),
	}

	data := rows
	switch {
	case header && len(rows) > 0:
		sample.Columns = headerLabels(padRow(rows[0], width))
		data = rows[1:]
	case header:
		sample.Columns = []string{}
	default:
		sample.Columns = positionalLabels(width)
	}

	sample.Rows = make([][]string, len(data))
	for i, row := range data {
		sample.Rows[i] = padRow(row, width)
	}
	return sample
}

// Sample opens the workbook at path and samples one sheet.
func Sample(path string, opts Options) (*models.Sample, error) {
	wb, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	return wb.Sample(opts)
}

// Enumerate opens the workbook at path and samples every sheet.
func Enumerate(path string, opts Options) (*models.WorkbookSamples, error) {
	wb, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	return wb.Enumerate(opts)
}
