package dto

// ScheduleImportError is one rejected row in the import report. Row is
// the 1-based line the user sees in their file or sheet (header = 1).
type ScheduleImportError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ScheduleImportResponse is the report returned for a non-fatal import:
// some rows imported, others rejected with a reason each.
type ScheduleImportResponse struct {
	Total   int                   `json:"total"`
	Success int                   `json:"success"`
	Failed  int                   `json:"failed"`
	Errors  []ScheduleImportError `json:"errors"`
}

// SheetImportRequest links an import to a Google Sheets range.
type SheetImportRequest struct {
	SpreadsheetID string `json:"spreadsheet_id"`
	Range         string `json:"range"`
}
