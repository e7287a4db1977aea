package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mhulst/bonscan/constants"
	"github.com/mhulst/bonscan/internal/common"
	"github.com/mhulst/bonscan/internal/quality"
	"github.com/mhulst/bonscan/internal/receipt"
)

// Service batch-parses a directory of OCR text dumps and produces an XLSX
// summary, one row per receipt.
type Service struct {
	parser  *receipt.Parser
	gateOpt quality.Options
	sheet   string
	logger  *slog.Logger
}

func NewService(parser *receipt.Parser, gateOpt quality.Options, sheet string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if sheet == "" {
		sheet = "Receipts"
	}
	return &Service{parser: parser, gateOpt: gateOpt, sheet: sheet, logger: logger}
}

// Row is one parsed receipt in the export.
type Row struct {
	Path   string
	Parsed receipt.ParsedReceipt
	Score  int
	Status string // "ok" or the gate rejection reason
}

// ExportDirXLSX walks dir for .txt OCR dumps, runs the quality gate and the
// parser over each, and returns the workbook bytes. Rejected receipts still
// get a row so the operator can see what was dropped and why.
func (s *Service) ExportDirXLSX(ctx context.Context, dir string) ([]byte, error) {
	start := time.Now()
	scanID := common.ScanIDFromContext(ctx)

	paths, err := textFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("list OCR dumps: %w", err)
	}

	rows := make([]Row, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		text := string(raw)

		row := Row{Path: path, Score: quality.Score(text, -1), Status: "ok"}
		if err := quality.Check(text, -1, s.gateOpt); err != nil {
			var gerr *quality.GateError
			if !errors.As(err, &gerr) {
				return nil, err
			}
			row.Status = gerr.Reason
			s.logger.Warn("export.gate_reject", "scan_id", scanID, "path", path, "reason", gerr.Reason, "score", gerr.Score)
		} else {
			row.Parsed = s.parser.Parse(text)
		}
		rows = append(rows, row)
	}

	buf, err := s.writeXLSX(rows)
	if err != nil {
		return nil, err
	}
	s.logger.Info("export.ok", "scan_id", scanID, "receipts", len(rows), "took", time.Since(start))
	return buf, nil
}

func textFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := constants.NormalizeExt(filepath.Ext(e.Name()))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

func (s *Service) writeXLSX(rows []Row) ([]byte, error) {
	f := excelize.NewFile()
	if index, _ := f.GetSheetIndex(s.sheet); index == -1 {
		if _, err := f.NewSheet(s.sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(s.sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Source File",
		"Merchant",
		"Transaction Date",
		"Total",
		"Quality Score",
		"Status",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(s.sheet, cell, h)
	}

	for i, r := range rows {
		rowNum := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, rowNum)
			_ = f.SetCellValue(s.sheet, cell, v)
		}
		write(1, filepath.Base(r.Path))
		write(2, r.Parsed.Merchant)
		write(3, r.Parsed.Date)
		write(4, r.Parsed.Total)
		write(5, r.Score)
		write(6, r.Status)
	}

	_ = f.SetColWidth(s.sheet, "A", "A", 32) // file
	_ = f.SetColWidth(s.sheet, "B", "B", 28) // merchant
	_ = f.SetColWidth(s.sheet, "C", "C", 14) // date
	_ = f.SetColWidth(s.sheet, "D", "E", 12) // total, score
	_ = f.SetColWidth(s.sheet, "F", "F", 48) // status

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
