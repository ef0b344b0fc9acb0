// Package runner drives the sequential batch pipeline: word source → prompt
// → model → parser → artifacts, with durable progress between batches.
package runner

import (
	"context"
	"time"

	"go.uber.org/zap"

	"neoword/internal/parse"
	"neoword/internal/progress"
	"neoword/internal/prompt"
	"neoword/internal/record"
	"neoword/internal/retry"
)

// ModelClient is the one call the runner makes against the model provider.
type ModelClient interface {
	Submit(ctx context.Context, prompt string) (string, error)
}

// DefaultPacing is the fixed delay between batches, applied regardless of
// outcome to respect upstream rate limits.
const DefaultPacing = time.Second

// Config tunes the runner. Zero values fall back to defaults.
type Config struct {
	BatchSize int
	Retry     retry.Config
	Pacing    time.Duration

	// Sleep is the pacing sleep; replaced in tests.
	Sleep func(time.Duration)
}

func (c *Config) applyDefaults() {
	if c.BatchSize <= 0 {
		c.BatchSize = 20
	}
	if c.Retry.MaxAttempts == 0 {
		c.Retry = retry.DefaultConfig(3)
	}
	if c.Pacing == 0 {
		c.Pacing = DefaultPacing
	}
	if c.Sleep == nil {
		c.Sleep = time.Sleep
	}
}

// Runner processes the word list batch by batch. It is the only stateful
// component; everything it calls is a pure function or a simple store.
type Runner struct {
	cfg    Config
	client ModelClient
	store  *record.Store
	prog   *progress.Store
	log    *zap.Logger
}

// New builds a runner. All collaborators are injected; the runner owns no
// global state.
func New(cfg Config, client ModelClient, store *record.Store, prog *progress.Store, log *zap.Logger) *Runner {
	cfg.applyDefaults()
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{cfg: cfg, client: client, store: store, prog: prog, log: log}
}

// Run processes words from the persisted cursor to the end of the list and
// returns the final cursor. Batches already in the completed set are
// skipped, so re-running after a crash never reprocesses finished work.
// Only infrastructure failures (artifact or progress writes) abort the run;
// model and parse failures are absorbed per batch.
func (r *Runner) Run(ctx context.Context, words []string) (*progress.Progress, error) {
	prog, err := r.prog.Load()
	if err != nil {
		return nil, err
	}

	r.log.Info("resuming run",
		zap.Int("total_words", len(words)),
		zap.Int("start_index", prog.LastIndex),
		zap.Int("completed_batches", len(prog.Batches)))

	for i := prog.LastIndex; i < len(words); i += r.cfg.BatchSize {
		batchNum := i/r.cfg.BatchSize + 1
		if prog.Completed(batchNum) {
			r.log.Info("batch already processed, skipping", zap.Int("batch", batchNum))
			continue
		}

		end := i + r.cfg.BatchSize
		if end > len(words) {
			end = len(words)
		}
		batch := words[i:end]

		r.log.Info("processing batch",
			zap.Int("batch", batchNum),
			zap.Int("offset", i),
			zap.Strings("words", batch))

		if err := r.processBatch(ctx, prog, batchNum, i, batch); err != nil {
			return nil, err
		}

		r.cfg.Sleep(r.cfg.Pacing)
	}

	return prog, nil
}

// processBatch runs one batch end to end and persists the advanced cursor.
// Both outcomes finalize the batch: a reply that arrived is parsed with
// per-word error isolation, and a call that exhausted its retries produces
// one error record per word. Either way the batch is never retried on a
// later run.
func (r *Runner) processBatch(ctx context.Context, prog *progress.Progress, batchNum, offset int, batch []string) error {
	payload := prompt.Build(batch)

	reply, err := retry.Do(ctx, r.cfg.Retry, r.log, func(ctx context.Context) (string, error) {
		return r.client.Submit(ctx, payload)
	})
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return r.finalizeFailed(prog, batchNum, offset, batch, err)
	}

	recs := parse.Parse(reply, batch)
	success, errCount := record.Count(recs)

	resultPath, werr := r.store.WriteResults(batchNum, recs)
	if werr != nil {
		return werr
	}
	r.log.Info("batch finished",
		zap.Int("batch", batchNum),
		zap.Int("success", success),
		zap.Int("errors", errCount),
		zap.String("results", resultPath))

	if errCount > 0 {
		errorPath, werr := r.store.WriteErrors(batchNum, record.Errors(recs))
		if werr != nil {
			return werr
		}
		r.log.Warn("batch had per-word errors",
			zap.Int("batch", batchNum),
			zap.Int("errors", errCount),
			zap.String("errors_file", errorPath))
	}

	prog.LastIndex = offset + r.cfg.BatchSize
	prog.Processed += len(batch)
	prog.MarkCompleted(batchNum)
	return r.prog.Save(prog)
}

// finalizeFailed records a batch whose model call exhausted its retries.
// The cursor still advances: forward progress is preferred over retrying a
// batch that already burned its budget.
func (r *Runner) finalizeFailed(prog *progress.Progress, batchNum, offset int, batch []string, cause error) error {
	recs := make([]record.Record, 0, len(batch))
	for _, w := range batch {
		recs = append(recs, record.Failure(w, cause.Error(), ""))
	}

	errorPath, werr := r.store.WriteErrors(batchNum, recs)
	if werr != nil {
		return werr
	}
	r.log.Error("batch failed",
		zap.Int("batch", batchNum),
		zap.String("errors_file", errorPath),
		zap.Error(cause))

	prog.LastIndex = offset + r.cfg.BatchSize
	prog.MarkCompleted(batchNum)
	return r.prog.Save(prog)
}
