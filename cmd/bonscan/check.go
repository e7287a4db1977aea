package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhulst/bonscan/internal/common"
	"github.com/mhulst/bonscan/internal/quality"
)

var checkCmd = &cobra.Command{
	Use:   "check [text-file]",
	Short: "Run only the quality gate over an OCR transcript",
	Long: `Scores the transcript's legibility and reports whether it would be
accepted by the pipeline. Exit code 1 means the receipt should be rescanned.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Float64("confidence", -1, "OCR engine confidence (0-100), omit if unknown")
}

func runCheck(cmd *cobra.Command, args []string) error {
	confidence, _ := cmd.Flags().GetFloat64("confidence")

	text, err := readInput(args[0])
	if err != nil {
		return err
	}

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
			return fmt.Errorf("rejected: %s (score %d)", gerr.Reason, gerr.Score)
		}
		return err
	}
	fmt.Printf("ok (score %d)\n", quality.Score(text, confidence))
	return nil
}
