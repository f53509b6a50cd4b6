package sheetpeek

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fixtureSheet struct {
	name string
	rows [][]interface{}
}

// writeWorkbook saves the given sheets, in order, to a temporary xlsx file.
func writeWorkbook(t *testing.T, sheets ...fixtureSheet) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", sheet.name))
		} else {
			_, err := f.NewSheet(sheet.name)
			require.NoError(t, err)
		}
		for r, row := range sheet.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(sheet.name, cell, &row))
		}
	}

	path := filepath.Join(t.TempDir(), "inscriptions.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// inscriptionsWorkbook mimics the layout of the registration workbook: a
// tariff sheet followed by a registration sheet with a title row.
func inscriptionsWorkbook(t *testing.T) string {
	return writeWorkbook(t,
		fixtureSheet{name: "Tarifs", rows: [][]interface{}{
			{"Cours", "Semestre", "Année"},
			{"Hip-hop", 140, 250},
			{"Breakdance", 150, 270},
			{"Ragga", 140, 250},
		}},
		fixtureSheet{name: "Inscriptions 23-24", rows: [][]interface{}{
			{"Actif", "Nom", "Cours", nil, nil, "Montant", "Type", "Paiement 1"},
			{true, "Dupont Marie", "Hip-hop", nil, nil, 140, "Semestre", 70},
			{false, "Martin Paul", "Ragga", nil, nil, 250, "Année", 250},
			{true, "Durand Léa", "Breakdance", nil, nil, 150, "Semestre", nil},
			{true, "Petit Hugo", "Hip-hop", nil, nil, 140, "Semestre", 140},
			{false, "Moreau Jade", "Ragga", nil, nil, 250, "Année", 125},
			{true, "Roux Tom", "Hip-hop", nil, nil, 140, "Semestre", 140},
		}},
		fixtureSheet{name: "Archive", rows: nil},
	)
}
