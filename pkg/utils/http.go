package utils

import (
	"fmt"
	"io"
	"net/http"
)

// ReadResponseBody lê e fecha o corpo da resposta, limitado a limit bytes.
func ReadResponseBody(resp *http.Response, limit int64) ([]byte, error) {
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, err
	}

	if int64(len(data)) > limit {
		return nil, fmt.Errorf("resposta excede o limite de %d bytes", limit)
	}

	return data, nil
}
