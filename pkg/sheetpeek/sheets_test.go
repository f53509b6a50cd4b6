package sheetpeek

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSheet(t *testing.T) {
	names := []string{"Tarifs", "Inscriptions 23-24", "2023"}

	tests := []struct {
		ref       string
		hint      string
		wantName  string
		wantIndex int
	}{
		{"", "", "Tarifs", 0},
		{"0", "", "Tarifs", 0},
		{"1", "", "Inscriptions 23-24", 1},
		{"Tarifs", "", "Tarifs", 0},
		{"2023", "", "2023", 2},
		{"auto", "inscription", "Inscriptions 23-24", 1},
		{"AUTO", "tarif", "Tarifs", 0},
	}

	for _, tt := range tests {
		name, idx, err := ResolveSheet(names, tt.ref, tt.hint)
		require.NoError(t, err, tt.ref)
		assert.Equal(t, tt.wantName, name, tt.ref)
		assert.Equal(t, tt.wantIndex, idx, tt.ref)
	}
}

func TestResolveSheetNotFound(t *testing.T) {
	tests := []struct {
		names []string
		ref   string
	}{
		{[]string{"Tarifs"}, "1"},
		{[]string{"Tarifs"}, "tarifs"},
		{nil, ""},
	}

	for _, tt := range tests {
		_, idx, err := ResolveSheet(tt.names, tt.ref, "")
		assert.ErrorIs(t, err, ErrSheetNotFound, tt.ref)
		assert.Equal(t, -1, idx)
	}
}

func TestPrimarySheet(t *testing.T) {
	tests := []struct {
		names    []string
		hint     string
		expected int
	}{
		{[]string{"Tarifs", "Données", "SF INSCRIPTIONS"}, "inscription", 2},
		{[]string{"Tarifs", "Données"}, "inscription", 1},
		{[]string{"Tarifs", "Données"}, "", 1},
		{[]string{"Tarifs"}, "inscription", 0},
		{nil, "inscription", -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, PrimarySheet(tt.names, tt.hint), "%v", tt.names)
	}
}

func TestHeaderLabels(t *testing.T) {
	tests := []struct {
		row      []string
		expected []string
	}{
		{[]string{"a", "b"}, []string{"a", "b"}},
		{[]string{"", "b", ""}, []string{"Unnamed: 0", "b", "Unnamed: 2"}},
		{[]string{"Nom", "Nom", "Nom"}, []string{"Nom", "Nom.1", "Nom.2"}},
		{[]string{"x", "x.1", "x"}, []string{"x", "x.1", "x.2"}},
		{[]string{"A", "A", "A.1"}, []string{"A", "A.1", "A.1.1"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, headerLabels(tt.row), "%v", tt.row)
	}
}

func TestAutoSheetSample(t *testing.T) {
	s, err := Sample(inscriptionsWorkbook(t), Options{Sheet: SheetAuto, Rows: 1})
	require.NoError(t, err)
	assert.Equal(t, "Inscriptions 23-24", s.Sheet)
	assert.Equal(t, 1, s.Index)
}
