// Package spreadsheet lê as exportações do ZSBMS (xlsx, xls e csv) para uma grade de texto
// e reúne as regras de coerção e normalização partilhadas pelos parsers.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("formato de planilha não suportado")
	ErrEmptyWorkbook     = errors.New("planilha sem folhas")
)

var (
	zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0}
	utf8BOM  = []byte{0xEF, 0xBB, 0xBF}
)

// Grid é a primeira folha de uma planilha, linha a linha. As linhas podem ter comprimentos diferentes.
type Grid [][]string

// Cell devolve o texto da célula ou "" quando a posição não existe.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return ""
	}
	return strings.TrimSpace(g[row][col])
}

// Row devolve a linha ou nil quando o índice está fora da grade.
func (g Grid) Row(i int) []string {
	if i < 0 || i >= len(g) {
		return nil
	}
	return g[i]
}

// ReadFile carrega a primeira folha do ficheiro. O formato é identificado pelos bytes iniciais
// e, na falta deles, pela extensão; o ZSBMS entrega xlsx com extensão .xls em algumas versões.
func ReadFile(path string) (Grid, error) {
	head, err := readHead(path, 8)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir o ficheiro %s: %w", filepath.Base(path), err)
	}

	switch {
	case bytes.HasPrefix(head, zipMagic):
		return readXLSX(path)
	case bytes.HasPrefix(head, oleMagic):
		return readXLS(path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return readCSV(path)
	case ".xlsx", ".xlsm":
		return readXLSX(path)
	case ".xls":
		return readXLS(path)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
}

func readHead(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, n)
	read, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf[:read], nil
}

func readXLSX(path string) (Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir planilha xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	// Valores brutos: datas chegam como número de série e números sem formatação regional.
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("erro ao ler linhas da folha %s: %w", sheets[0], err)
	}

	for _, row := range rows {
		for c := range row {
			row[c] = rawNumber(row[c])
		}
	}

	return Grid(rows), nil
}

func readXLS(path string) (Grid, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir planilha xls: %w", err)
	}

	if wb.NumSheets() == 0 {
		return nil, ErrEmptyWorkbook
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, ErrEmptyWorkbook
	}

	grid := make(Grid, 0, int(sheet.MaxRow)+1)
	for r := 0; r <= int(sheet.MaxRow); r++ {
		row := sheet.Row(r)
		if row == nil {
			grid = append(grid, nil)
			continue
		}

		cells := make([]string, row.LastCol())
		for c := range cells {
			cells[c] = rawNumber(strings.TrimSpace(row.Col(c)))
		}
		grid = append(grid, cells)
	}

	return grid, nil
}

func readCSV(path string) (Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler csv: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("erro ao interpretar csv: %w", err)
	}

	return Grid(rows), nil
}
