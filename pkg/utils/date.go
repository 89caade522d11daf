package utils

import "time"

// ParseDate valida uma data yyyy-mm-dd vinda da query string. Vazia devolve fallback.
func ParseDate(dateStr string, fallback time.Time) (string, error) {
	if dateStr == "" {
		return fallback.Format(time.DateOnly), nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return "", err
	}

	return date.Format(time.DateOnly), nil
}
