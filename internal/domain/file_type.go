package domain

import "strings"

// FileType identifica um dos layouts de relatório exportados pelo ZSBMS.
type FileType string

const (
	FileTypeDaily   FileType = "daily"
	FileTypeZone    FileType = "zone"
	FileTypeArticle FileType = "article"
	FileTypeABC     FileType = "abc"
	FileTypeHourly  FileType = "hourly"
	FileTypeUnknown FileType = "unknown"
)

// FileTypes lista os formatos suportados pelo importador, na ordem de importação do sync.
var FileTypes = []FileType{
	FileTypeDaily,
	FileTypeZone,
	FileTypeArticle,
	FileTypeABC,
	FileTypeHourly,
}

func (t FileType) String() string {
	return string(t)
}

// Valid indica se o tipo é um dos formatos importáveis.
func (t FileType) Valid() bool {
	for _, ft := range FileTypes {
		if ft == t {
			return true
		}
	}
	return false
}

// ParseFileType converte o texto recebido (flag da CLI, query param) num FileType.
func ParseFileType(value string) (FileType, bool) {
	ft := FileType(strings.ToLower(strings.TrimSpace(value)))
	if !ft.Valid() {
		return FileTypeUnknown, false
	}
	return ft, true
}
