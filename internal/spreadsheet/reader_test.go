package spreadsheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadFile_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendas.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Loja", "Data", "Total"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Lupita Pizza - Alvalade", 45731, 1234.56, 1.234}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	grid, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, grid, 2)

	assert.Equal(t, "Loja", grid.Cell(0, 0))
	date, ok := ParseDate(grid.Cell(1, 1))
	assert.True(t, ok)
	assert.Equal(t, "2025-03-15", date)
	assert.InDelta(t, 1234.56, ParseNumber(grid.Cell(1, 2)), 1e-9)
	assert.InDelta(t, 1.234, ParseNumber(grid.Cell(1, 3)), 1e-9)
	assert.Equal(t, "", grid.Cell(5, 5))
}

func TestReadFile_XLSXWithLegacyExtension(t *testing.T) {
	dir := t.TempDir()
	xlsxPath := filepath.Join(dir, "export.xlsx")
	path := filepath.Join(dir, "export.xls")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Hora", "Zona"}))
	require.NoError(t, f.SaveAs(xlsxPath))
	require.NoError(t, f.Close())
	require.NoError(t, os.Rename(xlsxPath, path))

	grid, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hora", grid.Cell(0, 0))
}

func TestReadFile_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendas.csv")
	content := "\xEF\xBB\xBFLoja;Data;Total;Itens\nLupita Pizza - Porto;15-03-2025;1.234,56;12.500\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	grid, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Loja", grid.Cell(0, 0))
	assert.InDelta(t, 1234.56, ParseNumber(grid.Cell(1, 2)), 1e-9)
	assert.InDelta(t, 12500, ParseNumber(grid.Cell(1, 3)), 1e-9)
}

func TestReadFile_Errors(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nao-existe.xlsx"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "notas.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))
	_, err = ReadFile(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
