package parser

import (
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/spreadsheet"
)

const (
	detectMarkerRowFirst = 4
	detectMarkerRowLast  = 6
	detectABCRows        = 3
)

// nameHints é avaliado em ordem; "abc" vem primeiro porque o nome do relatório ABC também
// costuma conter "artigo".
var nameHints = []struct {
	hint     string
	fileType domain.FileType
}{
	{hint: "abc", fileType: domain.FileTypeABC},
	{hint: "hora", fileType: domain.FileTypeHourly},
	{hint: "zona", fileType: domain.FileTypeZone},
	{hint: "artigo", fileType: domain.FileTypeArticle},
}

// Detect classifica o ficheiro num dos formatos conhecidos: primeiro pelo nome e depois pelos
// marcadores do cabeçalho. Na dúvida, ou se o ficheiro não puder ser lido, devolve o formato diário.
func Detect(path string) domain.FileType {
	if fileType, ok := DetectFromName(path); ok {
		return fileType
	}

	grid, err := spreadsheet.ReadFile(path)
	if err != nil {
		logrus.WithError(err).WithField("file", filepath.Base(path)).
			Debug("Não foi possível ler o ficheiro para detecção, assumindo relatório diário")
		return domain.FileTypeDaily
	}

	return DetectFromGrid(grid)
}

// DetectFromName procura pistas do formato no nome do ficheiro.
func DetectFromName(path string) (domain.FileType, bool) {
	name := spreadsheet.Normalize(filepath.Base(path))
	for _, h := range nameHints {
		if strings.Contains(name, h.hint) {
			return h.fileType, true
		}
	}
	return domain.FileTypeUnknown, false
}

// DetectFromGrid classifica pelos marcadores: a marca ABC nas primeiras linhas e as colunas
// características nas linhas de cabeçalho.
func DetectFromGrid(grid spreadsheet.Grid) domain.FileType {
	for r := 0; r < detectABCRows && r < len(grid); r++ {
		if HasABCMarker(grid[r]) {
			return domain.FileTypeABC
		}
	}

	for r := detectMarkerRowFirst; r <= detectMarkerRowLast && r < len(grid); r++ {
		row := grid[r]
		switch {
		case spreadsheet.RowHasMarkers(row, "Artigo", "Familia"):
			return domain.FileTypeArticle
		case spreadsheet.RowHasMarkers(row, "Hora", "Zona"):
			return domain.FileTypeHourly
		case spreadsheet.RowHasMarkers(row, "Zona"):
			return domain.FileTypeZone
		case spreadsheet.RowHasMarkers(row, "Hora"):
			return domain.FileTypeHourly
		case spreadsheet.RowHasMarkers(row, "Ticket"):
			return domain.FileTypeDaily
		}
	}

	return domain.FileTypeDaily
}
