package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhulst/bonscan/internal/common"
	"github.com/mhulst/bonscan/internal/merchant"
	"github.com/mhulst/bonscan/internal/quality"
	"github.com/mhulst/bonscan/internal/receipt"
)

var parseCmd = &cobra.Command{
	Use:   "parse [text-file]",
	Short: "Parse one OCR transcript into merchant, date and total",
	Example: `  # Parse an OCR dump and print the fields as JSON
  bonscan parse scan.txt

  # Read from stdin, skip the quality gate
  cat scan.txt | bonscan parse - --no-gate

  # The OCR engine reported 73% confidence for this scan
  bonscan parse scan.txt --confidence 73`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().Float64("confidence", -1, "OCR engine confidence (0-100), omit if unknown")
	parseCmd.Flags().Bool("no-gate", false, "Skip the quality gate")
	parseCmd.Flags().String("registry", "", "Path to a custom brand registry JSON file")
}

func runParse(cmd *cobra.Command, args []string) error {
	confidence, _ := cmd.Flags().GetFloat64("confidence")
	noGate, _ := cmd.Flags().GetBool("no-gate")
	registryPath, _ := cmd.Flags().GetString("registry")

	text, err := readInput(args[0])
	if err != nil {
		return err
	}

	ctx := common.WithScanID(cmd.Context(), "")
	logger := slog.Default().With("scan_id", common.ScanIDFromContext(ctx))

	if !noGate {
		cfg := common.LoadConfig()
		if err := cfg.Validate(); err != nil {
			return err
		}
		opts := quality.Options{
			MinScore:       cfg.Quality.MinScore,
			MinLines:       cfg.Quality.MinLines,
			MinChars:       cfg.Quality.MinChars,
			RequireAmount:  cfg.Quality.RequireAmount,
			RequireSignals: cfg.Quality.RequireSignals,
		}
		if err := quality.Check(text, confidence, opts); err != nil {
			var gerr *quality.GateError
			if errors.As(err, &gerr) {
				logger.Warn("parse.gate_reject", "reason", gerr.Reason, "score", gerr.Score)
				return fmt.Errorf("receipt rejected, rescan the photo: %s", gerr.Reason)
			}
			return err
		}
	}

	reg, err := loadRegistry(registryPath)
	if err != nil {
		return err
	}
	parser := receipt.NewParser(reg, receipt.DefaultConfig(), logger)
	out := parser.Parse(text)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func readInput(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

func loadRegistry(path string) (*merchant.Registry, error) {
	if path == "" {
		return merchant.DefaultRegistry()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}
	return merchant.LoadRegistry(raw)
}
