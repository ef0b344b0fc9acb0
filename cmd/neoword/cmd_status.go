package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"neoword/internal/progress"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the saved progress cursor",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	p, err := progress.NewStore("progress.json").Load()
	if err != nil {
		return err
	}

	fmt.Printf("next word index:    %d\n", p.LastIndex)
	fmt.Printf("words processed:    %d\n", p.Processed)
	fmt.Printf("completed batches:  %d %v\n", len(p.Batches), p.Batches)
	return nil
}
