package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"neoword/internal/aggregate"
	"neoword/internal/record"
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Merge existing per-batch results into the final CSV without calling the model",
	RunE:  runAggregate,
}

func runAggregate(cmd *cobra.Command, args []string) error {
	// Aggregation needs no credentials, so it reads only the path layout
	// and skips the full config load.
	store := record.NewStore("results", "errors")

	summary, err := aggregate.Run(store, "final_results.csv")
	if err != nil {
		return err
	}

	fmt.Printf("aggregated %d records (%d success, %d errors) into %s\n",
		summary.Total, summary.Success, summary.Errors, summary.Filename)
	return nil
}
