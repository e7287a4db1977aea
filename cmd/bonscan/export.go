package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhulst/bonscan/internal/common"
	"github.com/mhulst/bonscan/internal/export"
	"github.com/mhulst/bonscan/internal/quality"
	"github.com/mhulst/bonscan/internal/receipt"
)

var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Batch-parse a directory of OCR transcripts into an XLSX summary",
	Long: `Walks a directory of plain-text OCR dumps, parses each receipt and writes one
workbook row per file with merchant, date, total and the quality score.
Receipts the gate rejects still get a row with the rejection reason.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "receipts.xlsx", "Output workbook path")
	exportCmd.Flags().String("registry", "", "Path to a custom brand registry JSON file")
}

func runExport(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	registryPath, _ := cmd.Flags().GetString("registry")

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}
	reg, err := loadRegistry(registryPath)
	if err != nil {
		return err
	}

	ctx := common.WithScanID(cmd.Context(), "")
	logger := slog.Default().With("scan_id", common.ScanIDFromContext(ctx))

	parser := receipt.NewParser(reg, receipt.DefaultConfig(), logger)
	svc := export.NewService(parser, quality.Options{
		MinScore:       cfg.Quality.MinScore,
		MinLines:       cfg.Quality.MinLines,
		MinChars:       cfg.Quality.MinChars,
		RequireAmount:  cfg.Quality.RequireAmount,
		RequireSignals: cfg.Quality.RequireSignals,
	}, cfg.Export.SheetName, logger)

	buf, err := svc.ExportDirXLSX(ctx, args[0])
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, buf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	fmt.Printf("wrote %s\n", output)
	return nil
}
