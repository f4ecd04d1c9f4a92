package handler

import (
	"errors"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/FertVad/CampusConnect-sub003/internal/config"
	"github.com/FertVad/CampusConnect-sub003/internal/domain"
	"github.com/FertVad/CampusConnect-sub003/internal/dto"
	"github.com/FertVad/CampusConnect-sub003/internal/importer"
	"github.com/FertVad/CampusConnect-sub003/internal/repository"
)

const maxImportFileSize = 5 * 1024 * 1024 // 5MB

// fiberLogger adapts the Fiber leveled logger to the importer's
// observability interface.
type fiberLogger struct{}

func (fiberLogger) Infof(format string, args ...interface{})  { fiberlog.Infof(format, args...) }
func (fiberLogger) Warnf(format string, args ...interface{})  { fiberlog.Warnf(format, args...) }
func (fiberLogger) Errorf(format string, args ...interface{}) { fiberlog.Errorf(format, args...) }

// ScheduleImportHandler exposes the schedule import pipeline over HTTP:
// file upload (CSV/XLSX) and linked Google Sheets.
type ScheduleImportHandler struct {
	imp          *importer.Importer
	scheduleRepo *repository.ScheduleRepository
	google       config.GoogleConfig
}

func NewScheduleImportHandler(
	subjectRepo *repository.SubjectRepository,
	scheduleRepo *repository.ScheduleRepository,
	google config.GoogleConfig,
) (*ScheduleImportHandler, error) {
	imp, err := importer.New(subjectRepo, importer.HashResolver{}, importer.WithLogger(fiberLogger{}))
	if err != nil {
		return nil, err
	}
	return &ScheduleImportHandler{
		imp:          imp,
		scheduleRepo: scheduleRepo,
		google:       google,
	}, nil
}

// ImportFile handles schedule import from an uploaded CSV or XLSX file.
func (h *ScheduleImportHandler) ImportFile(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse("INVALID_FILE", "File is missing"))
	}

	if file.Size > maxImportFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse("FILE_TOO_LARGE", "Maximum file size is 5MB"))
	}

	filename := strings.ToLower(file.Filename)
	isCSV := strings.HasSuffix(filename, ".csv")
	isXLSX := strings.HasSuffix(filename, ".xlsx")
	if !isCSV && !isXLSX {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse("INVALID_FILE_TYPE", "File must be CSV or XLSX"))
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse("INTERNAL_ERROR", "Failed to open file"))
	}
	defer f.Close()

	var src importer.RowSource
	var source domain.ImportSource
	if isCSV {
		src, err = importer.NewCSVSource(f)
		source = domain.SourceCSV
	} else {
		src, err = importer.NewXLSXSource(f)
		source = domain.SourceXLSX
	}
	if err != nil {
		return h.fatal(c, fiber.StatusBadRequest, err)
	}

	return h.run(c, src, source)
}

// ImportSheet handles schedule import from a linked Google Sheets range.
func (h *ScheduleImportHandler) ImportSheet(c *fiber.Ctx) error {
	var req dto.SheetImportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse("INVALID_BODY", "Invalid request body"))
	}
	if req.SpreadsheetID == "" || req.Range == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse("INVALID_BODY", "spreadsheet_id and range are required"))
	}

	if h.google.CredentialsFile == "" {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse("NOT_CONFIGURED", "Google API credentials are not configured"))
	}
	credentials, err := os.ReadFile(h.google.CredentialsFile)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse("NOT_CONFIGURED", "Failed to read Google API credentials"))
	}

	src, err := importer.NewSheetSource(c.Context(), importer.SheetConfig{
		CredentialsJSON: credentials,
		SpreadsheetID:   req.SpreadsheetID,
		ReadRange:       req.Range,
	})
	if err != nil {
		return h.fatal(c, fiber.StatusBadGateway, err)
	}

	return h.run(c, src, domain.SourceSheet)
}

// ListImportLogs returns recent import batches for the audit screen.
func (h *ScheduleImportHandler) ListImportLogs(c *fiber.Ctx) error {
	logs, err := h.scheduleRepo.FindImportLogs(50)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse("INTERNAL_ERROR", "Failed to load import logs"))
	}
	return c.JSON(dto.SuccessResponse(logs, ""))
}

// run drives the pipeline for one source, persists the outcome and
// builds the report response.
func (h *ScheduleImportHandler) run(c *fiber.Ctx, src importer.RowSource, source domain.ImportSource) error {
	out, err := h.imp.Run(c.Context(), src)
	if err != nil {
		status := fiber.StatusBadRequest
		if source == domain.SourceSheet {
			status = fiber.StatusBadGateway
		}
		return h.fatal(c, status, err)
	}

	items := make([]domain.ScheduleItem, 0, len(out.Items))
	for _, item := range out.Items {
		items = append(items, domain.ScheduleItem{
			Course:      item.Course,
			Specialty:   item.Specialty,
			GroupName:   item.Group,
			DayOfWeek:   item.DayOfWeek,
			StartTime:   item.StartTime,
			EndTime:     item.EndTime,
			SubjectID:   item.SubjectID,
			TeacherName: item.Teacher,
			Room:        item.Room,
		})
	}
	if err := h.scheduleRepo.BulkCreate(items); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse("INTERNAL_ERROR", "Failed to save imported schedule"))
	}

	logErrors := make(domain.ImportErrorList, 0, len(out.Result.Errors))
	for _, e := range out.Result.Errors {
		logErrors = append(logErrors, domain.ImportRowError{Row: e.Row, Error: e.Message})
	}
	importLog := &domain.ScheduleImportLog{
		Source:  source,
		Total:   out.Result.Total,
		Success: out.Result.Success,
		Failed:  out.Result.Failed,
		Errors:  logErrors,
	}
	if err := h.scheduleRepo.CreateImportLog(importLog); err != nil {
		fiberlog.Errorf("schedule import: failed to write audit log: %v", err)
	}

	report := dto.ScheduleImportResponse{
		Total:   out.Result.Total,
		Success: out.Result.Success,
		Failed:  out.Result.Failed,
		Errors:  make([]dto.ScheduleImportError, 0, len(out.Result.Errors)),
	}
	for _, e := range out.Result.Errors {
		report.Errors = append(report.Errors, dto.ScheduleImportError{Row: e.Row, Error: e.Message})
	}

	return c.JSON(dto.SuccessResponse(report, "Import finished"))
}

// fatal maps a batch-level failure to an error response. No partial
// report is produced; the caller must treat the import as not attempted.
func (h *ScheduleImportHandler) fatal(c *fiber.Ctx, status int, err error) error {
	var srcErr *importer.SourceError
	if errors.As(err, &srcErr) {
		return c.Status(status).JSON(dto.ErrorResponse("SOURCE_UNREACHABLE", srcErr.Error()))
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse("IMPORT_FAILED", err.Error()))
}
