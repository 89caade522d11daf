package importing

import "errors"

var (
	ErrUnsupportedFileType = errors.New("tipo de ficheiro não suportado")
	ErrUnknownReport       = errors.New("relatório desconhecido")
)
