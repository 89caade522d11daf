package analytics

import "errors"

var (
	ErrInvalidPeriod   = errors.New("período inválido")
	ErrInvalidOrderBy  = errors.New("ordenação inválida")
	ErrSyncRunNotFound = errors.New("execução de sincronização não encontrada")
)
