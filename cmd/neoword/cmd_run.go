package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"neoword/internal/aggregate"
	"neoword/internal/config"
	"neoword/internal/deepseek"
	"neoword/internal/logging"
	"neoword/internal/progress"
	"neoword/internal/record"
	"neoword/internal/retry"
	"neoword/internal/runner"
	"neoword/internal/wordlist"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process the wordlist batch by batch, resuming from saved progress",
	RunE:  runPipeline,
}

func runPipeline(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logging.New(cfg.LogFile).With(zap.String("run_id", uuid.NewString()))
	defer func() { _ = log.Sync() }()

	words, path, err := wordlist.Load(cfg.WordlistPath)
	if err != nil {
		return err
	}
	log.Info("wordlist loaded", zap.String("path", path), zap.Int("words", len(words)))

	store := record.NewStore(cfg.ResultsDir, cfg.ErrorsDir)
	if err := store.EnsureDirs(); err != nil {
		return err
	}
	progStore := progress.NewStore(cfg.ProgressFile)

	r := runner.New(runner.Config{
		BatchSize: cfg.BatchSize,
		Retry:     retry.DefaultConfig(cfg.MaxRetries),
	}, deepseek.New(cfg.APIKey, cfg.BaseURL, cfg.Model), store, progStore, log)

	final, err := r.Run(cmd.Context(), words)
	if err != nil {
		return err
	}

	if final.Done(len(words)) {
		log.Info("all batches attempted, aggregating results")
		summary, err := aggregate.Run(store, cfg.FinalFile)
		if err != nil {
			return err
		}
		log.Info("aggregation complete",
			zap.String("file", summary.Filename),
			zap.Int("total", summary.Total),
			zap.Int("success", summary.Success),
			zap.Int("errors", summary.Errors))
	}

	log.Info("run finished", zap.Duration("elapsed", time.Since(start)))
	return nil
}
