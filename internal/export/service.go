package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/aferrand/decisions-collector/constants"
	"github.com/aferrand/decisions-collector/internal/repository"
)

// Service is a tiny façade over the decision gateway that produces XLSX
// bytes for operational reports.
type Service struct {
	decisions repository.DecisionRepository
	logger    *slog.Logger
}

func NewService(decisions repository.DecisionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{decisions: decisions, logger: logger}
}

// ExportDecisionsXLSX returns an XLSX workbook listing decisions for the
// given status and date window. An empty status means all statuses.
func (s *Service) ExportDecisionsXLSX(ctx context.Context, status constants.LabelStatus, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	recs, err := s.decisions.List(ctx, constants.SourceName, status, from, to)
	if err != nil {
		return nil, fmt.Errorf("query decisions: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Decisions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Source ID",
		"Jurisdiction",
		"Chamber",
		"Case Number",
		"Decision Date",
		"Label Status",
		"Publish Status",
		"Redaction Categories",
		"Created",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, d := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, d.SourceID)
		write(2, d.JurisdictionID)
		write(3, d.ChamberName)
		write(4, d.CaseNumber)
		write(5, d.DateDecision.Format("2006-01-02"))
		write(6, string(d.LabelStatus))
		write(7, string(d.PublishStatus))
		write(8, strings.Join(constants.AsStringSlice(d.Occultation.CategoriesToOmit), "|"))
		write(9, d.DateCreation.Format("2006-01-02 15:04:05"))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 20)
	_ = f.SetColWidth(sheet, "B", "C", 18)
	_ = f.SetColWidth(sheet, "D", "D", 22)
	_ = f.SetColWidth(sheet, "E", "E", 14)
	_ = f.SetColWidth(sheet, "F", "G", 24)
	_ = f.SetColWidth(sheet, "H", "I", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
