package dto

// ImportRowError records one skipped spreadsheet row. Row numbers are
// 1-based workbook rows, so the first data row is 2.
type ImportRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportReport is the outcome of one spreadsheet import batch.
type ImportReport struct {
	BatchID  string           `json:"batch_id"`
	Imported int              `json:"imported"`
	Skipped  int              `json:"skipped"`
	Errors   []ImportRowError `json:"errors"`
}
