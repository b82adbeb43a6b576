package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/Alamin4D/battle-server-website/internal/repositories"
)

const (
	ApplicationsSheet = "Applications"
	ScholarshipsSheet = "Scholarships"
)

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportApplications(ctx context.Context, w io.Writer) error {
	docs, err := s.repo.Application().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list applications: %w", err)
	}
	return s.writeWorkbook(ctx, w, ApplicationsSheet, docs)
}

func (s *exportService) ExportScholarships(ctx context.Context, w io.Writer) error {
	docs, err := s.repo.Scholarship().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list scholarships: %w", err)
	}
	return s.writeWorkbook(ctx, w, ScholarshipsSheet, docs)
}

// writeWorkbook renders one row per document under a header row holding
// the union of top-level keys, _id first and the rest sorted.
func (s *exportService) writeWorkbook(ctx context.Context, w io.Writer, sheet string, docs []models.Document) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WarnContext(ctx, "Failed to close workbook", "error", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	columns := documentColumns(docs)
	header := make([]interface{}, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetRowStyle(sheet, 1, 1, style)
	}

	for i, doc := range docs {
		row := make([]interface{}, len(columns))
		for j, col := range columns {
			row[j] = cellValue(doc[col])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	s.logger.InfoContext(ctx, "Workbook exported", "sheet", sheet, "rows", len(docs))
	return nil
}

func documentColumns(docs []models.Document) []string {
	seen := make(map[string]struct{})
	for _, doc := range docs {
		for k := range doc {
			if k != models.IDField {
				seen[k] = struct{}{}
			}
		}
	}

	columns := make([]string, 0, len(seen)+1)
	for k := range seen {
		columns = append(columns, k)
	}
	sort.Strings(columns)
	return append([]string{models.IDField}, columns...)
}

func cellValue(v interface{}) interface{} {
	switch val := v.(type) {
	case nil:
		return ""
	case string, bool, int, int32, int64, float32, float64:
		return val
	case interface{ Hex() string }:
		return val.Hex()
	case fmt.Stringer:
		return val.String()
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	}
}
