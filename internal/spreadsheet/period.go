package spreadsheet

import (
	"regexp"
	"strings"
)

var periodPattern = regexp.MustCompile(
	`(\d{1,2}[-/.]\d{1,2}[-/.]\d{4}|\d{4}-\d{2}-\d{2})\s+(?:a|ate|até|-)\s+(\d{1,2}[-/.]\d{1,2}[-/.]\d{4}|\d{4}-\d{2}-\d{2})`,
)

var (
	periodFromLabels = []string{"de", "desde", "data inicial", "data de inicio", "data inicio", "inicio", "periodo de"}
	periodToLabels   = []string{"a", "ate", "data final", "data de fim", "data fim", "fim"}
)

// ExtractPeriod procura o intervalo do relatório nas primeiras linhas: texto livre
// "dd-mm-yyyy a dd-mm-yyyy" ou um par rótulo/valor ("Data Inicial" | "01-03-2025").
func ExtractPeriod(grid Grid, maxRows int) (from, to string) {
	limit := min(maxRows, len(grid))

	for r := 0; r < limit; r++ {
		row := grid[r]

		for _, cell := range row {
			if f, t, ok := matchPeriod(cell); ok {
				return f, t
			}
		}

		// O intervalo pode vir partido em várias células da mesma linha.
		if f, t, ok := matchPeriod(strings.Join(row, " ")); ok {
			return f, t
		}
	}

	for r := 0; r < limit; r++ {
		row := grid[r]
		for c, cell := range row {
			label := strings.TrimSuffix(Normalize(cell), ":")
			label = strings.TrimSpace(label)
			if label == "" {
				continue
			}

			if from == "" && containsLabel(periodFromLabels, label) {
				if d, ok := ParseDate(nextValue(row, c)); ok {
					from = d
				}
			}
			if to == "" && containsLabel(periodToLabels, label) {
				if d, ok := ParseDate(nextValue(row, c)); ok {
					to = d
				}
			}
		}
	}

	if from != "" && to == "" {
		to = from
	}
	if to != "" && from == "" {
		from = to
	}

	return from, to
}

func matchPeriod(text string) (string, string, bool) {
	m := periodPattern.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	from, okFrom := ParseDate(m[1])
	to, okTo := ParseDate(m[2])
	if !okFrom || !okTo {
		return "", "", false
	}
	return from, to, true
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

func nextValue(row []string, col int) string {
	for i := col + 1; i < len(row); i++ {
		if v := strings.TrimSpace(row[i]); v != "" {
			return v
		}
	}
	return ""
}
