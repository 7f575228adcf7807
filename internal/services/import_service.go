package services

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"registro/internal/dto"
	"registro/internal/logs"
	"registro/internal/models"
	"registro/internal/repository"
	"registro/internal/utils"
)

// Structural import failures. Any of these aborts the whole upload
// before a single row is persisted.
var (
	ErrInvalidFileType = errors.New("invalid file type")
	ErrUnreadableFile  = errors.New("unreadable file")
	ErrInvalidHeaders  = errors.New("invalid headers")
)

// ImportHeaders is the fixed, positional header schema of an employee
// spreadsheet: the first six columns of row 1 must match, in order.
var ImportHeaders = []string{"Nome", "Email", "Salário", "Cargo", "Departamento", "Telefone"}

// AcceptedContentTypes lists the xlsx-family media types the import accepts.
var AcceptedContentTypes = []string{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/vnd.ms-excel.sheet.macroenabled.12",
}

const (
	colName = iota
	colEmail
	colSalary
	colPosition
	colDepartment
	colPhone
)

// ImportService runs the spreadsheet import pipeline: structural
// validation first, then a tolerant per-row loop, then one bulk commit.
type ImportService struct {
	employeeRepo repository.EmployeeRepository
}

// NewImportService creates a new ImportService.
func NewImportService(employeeRepo repository.EmployeeRepository) *ImportService {
	return &ImportService{
		employeeRepo: employeeRepo,
	}
}

// Import validates and persists an uploaded workbook. Row-level
// problems land in the report; only structural failures (steps 1-4) and
// a failed bulk commit return an error.
func (s *ImportService) Import(file io.Reader, contentType string) (*dto.ImportReport, error) {
	if !acceptedContentType(contentType) {
		return nil, ErrInvalidFileType
	}

	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return nil, ErrUnreadableFile
	}
	defer workbook.Close()

	rows, err := workbook.GetRows(workbook.GetSheetName(0))
	if err != nil {
		return nil, ErrUnreadableFile
	}

	report := &dto.ImportReport{
		BatchID: uuid.NewString(),
		Errors:  []dto.ImportRowError{},
	}

	if len(rows) < 2 {
		report.Errors = append(report.Errors, dto.ImportRowError{
			Row:   1,
			Error: "empty spreadsheet: no data rows",
		})
		return report, nil
	}

	if !headersMatch(rows[0]) {
		return nil, ErrInvalidHeaders
	}

	storedEmails, err := s.employeeRepo.ListEmails()
	if err != nil {
		return nil, fmt.Errorf("failed to load existing emails: %w", err)
	}
	taken := make(map[string]bool, len(storedEmails))
	for _, email := range storedEmails {
		taken[strings.ToLower(email)] = true
	}

	var batch []repository.ImportEmployee
	for i, row := range rows[1:] {
		rowNumber := i + 2

		name := cell(row, colName)
		email := cell(row, colEmail)
		if name == "" {
			report.Errors = append(report.Errors, dto.ImportRowError{Row: rowNumber, Error: "name is required"})
			continue
		}
		if email == "" {
			report.Errors = append(report.Errors, dto.ImportRowError{Row: rowNumber, Error: "email is required"})
			continue
		}

		// Collisions are checked against the store and against rows
		// accepted earlier in this batch, so the bulk insert cannot
		// trip the uniqueness constraint against itself.
		emailKey := strings.ToLower(email)
		if taken[emailKey] {
			report.Errors = append(report.Errors, dto.ImportRowError{Row: rowNumber, Error: "duplicate email"})
			continue
		}
		taken[emailKey] = true

		employee := &models.Employee{
			Name:   name,
			Email:  email,
			Salary: utils.ParseBRL(cell(row, colSalary)),
		}
		if phone := cell(row, colPhone); phone != "" {
			employee.Phone = &phone
		}

		batch = append(batch, repository.ImportEmployee{
			Employee:       employee,
			DepartmentName: cell(row, colDepartment),
			PositionName:   cell(row, colPosition),
		})
	}

	if len(batch) > 0 {
		// A failure here is fatal for the whole import: the batch
		// commits atomically or not at all.
		if err := s.employeeRepo.ImportBatch(batch); err != nil {
			return nil, fmt.Errorf("bulk insert failed: %w", err)
		}
	}

	report.Imported = len(batch)
	report.Skipped = len(rows) - 1 - len(batch)

	logs.Logger.WithFields(map[string]interface{}{
		"batch_id": report.BatchID,
		"imported": report.Imported,
		"skipped":  report.Skipped,
	}).Info("spreadsheet import completed")

	return report, nil
}

func acceptedContentType(contentType string) bool {
	mediaType := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = strings.TrimSpace(mediaType[:i])
	}
	for _, accepted := range AcceptedContentTypes {
		if mediaType == accepted {
			return true
		}
	}
	return false
}

func headersMatch(header []string) bool {
	if len(header) < len(ImportHeaders) {
		return false
	}
	for i, want := range ImportHeaders {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return false
		}
	}
	return true
}

func cell(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}
