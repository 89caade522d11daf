package domain

import "time"

// UpsertOutcome indica o que aconteceu com uma linha durante o upsert.
type UpsertOutcome string

const (
	UpsertInserted UpsertOutcome = "inserted"
	UpsertUpdated  UpsertOutcome = "updated"
)

// Origens de uma importação.
const (
	ImportSourceUpload = "upload"
	ImportSourceSync   = "sync"
	ImportSourceCLI    = "cli"
)

// ImportResult é o resumo devolvido após importar um ficheiro.
type ImportResult struct {
	FileName        string   `json:"file_name"`
	FileType        FileType `json:"file_type"`
	DateFrom        string   `json:"date_from"`
	DateTo          string   `json:"date_to"`
	RecordsInserted int      `json:"records_inserted"`
	RecordsUpdated  int      `json:"records_updated"`
	Errors          []string `json:"errors"`
	Stores          []string `json:"stores"`
}

// Tally contabiliza o resultado de um upsert.
func (r *ImportResult) Tally(outcome UpsertOutcome) {
	switch outcome {
	case UpsertInserted:
		r.RecordsInserted++
	case UpsertUpdated:
		r.RecordsUpdated++
	}
}

// ImportLog é o registro de auditoria (append-only) de uma importação.
type ImportLog struct {
	ID              int64     `json:"id"`
	FileName        string    `json:"file_name"`
	ImportType      FileType  `json:"import_type"`
	Source          string    `json:"source"`
	DateFrom        string    `json:"date_from"`
	DateTo          string    `json:"date_to"`
	RecordsInserted int       `json:"records_inserted"`
	RecordsUpdated  int       `json:"records_updated"`
	Errors          []string  `json:"errors"`
	Stores          []string  `json:"stores"`
	CreatedAt       time.Time `json:"created_at"`
}
