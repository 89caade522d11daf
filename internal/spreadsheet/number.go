package spreadsheet

import (
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var numberCleaner = strings.NewReplacer("€", "", "%", "", " ", "", " ", "", "\t", "")

// ParseNumber converte números nativos ou texto no formato europeu ("1.234,56") em float64.
// Valores que não podem ser interpretados resultam em 0.
func ParseNumber(value any) float64 {
	n, _ := ParseNumberOK(value)
	return n
}

// ParseNumberOK é como ParseNumber, mas indica se o valor foi reconhecido.
func ParseNumberOK(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		return v, !math.IsNaN(v) && !math.IsInf(v, 0)
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case decimal.Decimal:
		f, _ := v.Float64()
		return f, true
	case string:
		d, ok := parseDecimal(v)
		if !ok {
			return 0, false
		}
		f, _ := d.Float64()
		return f, true
	}
	return 0, false
}

// ParseDecimal é a versão exata de ParseNumber, usada nas somas de agregação.
func ParseDecimal(value any) decimal.Decimal {
	if s, ok := value.(string); ok {
		d, _ := parseDecimal(s)
		return d
	}
	f, _ := ParseNumberOK(value)
	return decimal.NewFromFloat(f)
}

// ParseInt arredonda o valor numérico para o inteiro mais próximo.
func ParseInt(value any) int {
	return int(math.Round(ParseNumber(value)))
}

func parseDecimal(raw string) (decimal.Decimal, bool) {
	s := numberCleaner.Replace(strings.TrimSpace(raw))
	if s == "" || s == "-" {
		return decimal.Zero, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}

	switch {
	case strings.Contains(s, ","):
		// Formato europeu: ponto separa milhares, vírgula separa decimais.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case strings.Count(s, ".") > 1, thousandsPattern.MatchString(strings.TrimPrefix(s, "-")):
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		d = d.Neg()
	}
	return d, true
}

// rawNumber protege os valores numéricos brutos do xlsx e do xls (1.234 vindo de um float) de
// serem lidos como milhares. O zero final não altera o valor.
func rawNumber(cell string) string {
	if rawThreeDecimals.MatchString(cell) {
		return cell + "0"
	}
	return cell
}
