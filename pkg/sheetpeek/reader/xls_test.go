package reader

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// registrations.xls is a BIFF8 workbook with three sheets:
//
//	Tarifs:       Cours/Semestre/Année header and two numeric rows
//	Inscriptions: header, two registrations with no record for row 2,
//	              and a trailing row of formatted blank cells
//	Archive:      no cells
var xlsFixture = filepath.Join("testdata", "registrations.xls")

func openXLSFixture(t *testing.T) *XLS {
	t.Helper()
	src, err := OpenXLS(xlsFixture)
	require.NoError(t, err)
	t.Cleanup(func() { src.Close() })
	return src
}

func TestXLSSheetNamesOrder(t *testing.T) {
	src := openXLSFixture(t)
	assert.Equal(t, []string{"Tarifs", "Inscriptions", "Archive"}, src.SheetNames())
}

func TestXLSReadRows(t *testing.T) {
	src := openXLSFixture(t)

	rows, err := src.ReadRows("Tarifs", 10)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Cours", "Semestre", "Année"},
		{"Hip-hop", "140", "250"},
		{"Ragga", "150", "270"},
	}, rows)
}

func TestXLSReadRowsLimit(t *testing.T) {
	src := openXLSFixture(t)

	tests := []struct {
		limit int
		want  int
	}{
		{1, 1},
		{2, 2},
		{3, 3},
	}
	for _, tt := range tests {
		rows, err := src.ReadRows("Tarifs", tt.limit)
		require.NoError(t, err)
		assert.Len(t, rows, tt.want, "limit %d", tt.limit)
	}

	rows, err := src.ReadRows("Tarifs", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hip-hop", "140", "250"}, rows[1])
}

func TestXLSReadRowsGapsAndTrailingBlanks(t *testing.T) {
	src := openXLSFixture(t)

	rows, err := src.ReadRows("Inscriptions", 10)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Nom", "Cours"}, rows[0])
	assert.Equal(t, []string{"Dupont Marie", "Hip-hop"}, rows[1])
	assert.Empty(t, rows[2])
	assert.Equal(t, []string{"Martin Paul", "Ragga"}, rows[3])
}

func TestXLSReadRowsEmptySheet(t *testing.T) {
	src := openXLSFixture(t)

	rows, err := src.ReadRows("Archive", 5)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestXLSReadRowsUnknownSheet(t *testing.T) {
	src := openXLSFixture(t)

	_, err := src.ReadRows("Missing", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing")
}

func TestOpenDispatchesXLS(t *testing.T) {
	src, err := Open(xlsFixture)
	require.NoError(t, err)
	defer src.Close()

	_, ok := src.(*XLS)
	assert.True(t, ok)

	rows, err := src.ReadRows("Inscriptions", 1)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Nom", "Cours"}}, rows)
}
