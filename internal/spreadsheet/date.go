package spreadsheet

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// Maior número de série aceite pelo Excel (31/12/9999).
	maxExcelSerial = 2958465
)

var (
	excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

	isoDatePattern = regexp.MustCompile(`^(\d{4})[-/.](\d{1,2})[-/.](\d{1,2})`)
	euDatePattern  = regexp.MustCompile(`^(\d{1,2})[-/.](\d{1,2})[-/.](\d{4})`)
	clockPattern   = regexp.MustCompile(`(\d{1,2})[:hH](\d{2})`)
)

// ParseDate normaliza a data para ISO (YYYY-MM-DD). Aceita texto ISO, dd-mm-yyyy, dd/mm/yyyy,
// time.Time e o número de série do Excel (época 1900). O segundo retorno é false quando a data
// não pode ser interpretada.
func ParseDate(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case time.Time:
		if v.IsZero() {
			return "", false
		}
		return v.Format(time.DateOnly), true
	case float64:
		return ExcelSerialToDate(v)
	case int:
		return ExcelSerialToDate(float64(v))
	case int64:
		return ExcelSerialToDate(float64(v))
	case string:
		return parseDateString(v)
	}
	return "", false
}

func parseDateString(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	if m := isoDatePattern.FindStringSubmatch(s); m != nil {
		return buildDate(m[1], m[2], m[3])
	}

	if m := euDatePattern.FindStringSubmatch(s); m != nil {
		return buildDate(m[3], m[2], m[1])
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return ExcelSerialToDate(serial)
	}

	return "", false
}

func buildDate(year, month, day string) (string, bool) {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)

	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	// time.Date normaliza 31/02 para março; uma data assim é inválida na origem.
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return "", false
	}
	return t.Format(time.DateOnly), true
}

// ExcelSerialToDate converte o número de série do Excel (45731 -> 2025-03-15).
func ExcelSerialToDate(serial float64) (string, bool) {
	if math.IsNaN(serial) || serial < 1 || serial > maxExcelSerial {
		return "", false
	}

	days := int(math.Floor(serial))
	// Antes de 01/03/1900 o Excel conta o inexistente 29/02/1900.
	if days < 60 {
		days++
	}
	return excelEpoch.AddDate(0, 0, days).Format(time.DateOnly), true
}

// ParseClock extrai a hora inicial ("12:15 - 12:30" -> 12, 15). Aceita também a fração de dia
// do Excel (0.5 -> 12:00).
func ParseClock(value string) (hour, minute int, ok bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, 0, false
	}

	if m := clockPattern.FindStringSubmatch(s); m != nil {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return 0, 0, false
		}
		return hour, minute, true
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		switch {
		case f >= 0 && f < 1:
			total := int(math.Round(f * 24 * 60))
			return (total / 60) % 24, total % 60, true
		case f >= 0 && f <= 23 && f == math.Trunc(f):
			return int(f), 0, true
		}
	}

	return 0, 0, false
}

// TimeSlot devolve a faixa de 30 minutos que contém o horário, no formato HH:MM.
func TimeSlot(value string) (string, bool) {
	hour, minute, ok := ParseClock(value)
	if !ok {
		return "", false
	}
	if minute >= 30 {
		minute = 30
	} else {
		minute = 0
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), true
}
