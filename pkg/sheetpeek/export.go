package sheetpeek

import (
	"bytes"
	"io"
	"os"

	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/models"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/output"
)

// Export samples a sheet and writes it to w as comma-separated text without
// a row index column. Column labels are written first only when opts.Header
// is set.
func Export(path string, opts Options, w io.Writer) (*models.Sample, error) {
	sample, err := Sample(path, opts)
	if err != nil {
		return nil, err
	}
	if err := output.WriteCSV(w, sample); err != nil {
		return nil, NewSampleError("export", path, sample.Sheet, err)
	}
	return sample, nil
}

// ExportFile is Export into a file, created or truncated.
// Nothing is written when sampling fails.
func ExportFile(path string, opts Options, outPath string) (*models.Sample, error) {
	var buf bytes.Buffer
	sample, err := Export(path, opts, &buf)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return nil, NewSampleError("export", outPath, sample.Sheet, err)
	}
	return sample, nil
}
