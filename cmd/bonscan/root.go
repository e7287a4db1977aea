package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.3.0"

var rootCmd = &cobra.Command{
	Use:   "bonscan",
	Short: "Turn receipt OCR text into structured expense data",
	Long: `bonscan takes the noisy text an OCR engine reads off a photographed
receipt and extracts a merchant name, a transaction date and the amount
actually paid, plus category suggestions for the expense form.

The input is plain text: run your OCR engine first and feed bonscan the
transcript. Unusable transcripts are rejected by the quality gate so you
know to rescan instead of correcting garbage by hand.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
