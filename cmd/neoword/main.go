// neoword classifies candidate Chinese words as post-2008 neologisms using
// an LLM judge, in resumable sequential batches.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "neoword",
	Short:        "Batch LLM judge for post-2008 Chinese neologisms",
	Long:         "neoword reads a wordlist, submits fixed-size batches to DeepSeek with a structured classification prompt, parses the fixed-format replies into per-word verdicts, and persists results with crash-safe resumable progress.",
	RunE:         runPipeline,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(runCmd, aggregateCmd, statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
