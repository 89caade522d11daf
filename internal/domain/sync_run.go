package domain

import "time"

// Origem do disparo de uma sincronização.
const (
	SyncTriggerManual = "manual"
	SyncTriggerCron   = "cron"
	SyncTriggerCLI    = "cli"
)

// Estados de uma execução de sincronização.
const (
	SyncStatusRunning = "running"
	SyncStatusSuccess = "success"
	SyncStatusPartial = "partial"
	SyncStatusFailed  = "failed"
)

// SyncRun é o registro de uma execução de sincronização com o ZSBMS.
type SyncRun struct {
	ID              int64              `json:"id"`
	Trigger         string             `json:"trigger"`
	Status          string             `json:"status"`
	DateFrom        string             `json:"date_from"`
	DateTo          string             `json:"date_to"`
	ReportsOK       int                `json:"reports_ok"`
	ReportsFailed   int                `json:"reports_failed"`
	RecordsInserted int                `json:"records_inserted"`
	RecordsUpdated  int                `json:"records_updated"`
	Details         []SyncReportDetail `json:"details"`
	Error           string             `json:"error,omitempty"`
	StartedAt       time.Time          `json:"started_at"`
	FinishedAt      *time.Time         `json:"finished_at,omitempty"`
}

// SyncReportDetail é o resultado de um relatório dentro de uma execução.
type SyncReportDetail struct {
	ReportKey string   `json:"report_key"`
	Success   bool     `json:"success"`
	FileName  string   `json:"file_name,omitempty"`
	Inserted  int      `json:"inserted"`
	Updated   int      `json:"updated"`
	Errors    []string `json:"errors,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// ClassifySyncStatus devolve success, partial ou failed a partir das contagens de relatórios.
func ClassifySyncStatus(ok, failed int) string {
	switch {
	case ok > 0 && failed == 0:
		return SyncStatusSuccess
	case ok > 0:
		return SyncStatusPartial
	default:
		return SyncStatusFailed
	}
}
