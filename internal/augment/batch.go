package augment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/xid"
)

// BatchTarget names a corpus language and the lexicons it extends.
type BatchTarget struct {
	Language string
	Targets  []string
}

// DefaultBatch maps every corpus language with a lexicon to the lexicon
// codes it extends, variants included.
var DefaultBatch = []BatchTarget{
	{Language: "dutch", Targets: []string{"nl", "nl_be"}},
	{Language: "french", Targets: []string{"fr", "fr_ca"}},
	{Language: "german", Targets: []string{"de"}},
	{Language: "italian", Targets: []string{"it"}},
	{Language: "polish", Targets: []string{"pl"}},
	{Language: "portuguese", Targets: []string{"pt", "pt_br", "pt_pt"}},
	{Language: "spanish", Targets: []string{"es", "es_mx"}},
}

// BatchOutcome is the result of one target within a batch.
type BatchOutcome struct {
	Language string
	Target   string
	Result   *Result // nil when Err is set
	Err      error
}

// BatchReport collects the outcome of every target of a batch run.
type BatchReport struct {
	RunID    string
	Outcomes []BatchOutcome
	Duration time.Duration
}

// Succeeded returns the number of targets that completed, no-ops included.
func (r *BatchReport) Succeeded() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the number of targets that failed.
func (r *BatchReport) Failed() int { return len(r.Outcomes) - r.Succeeded() }

// SuccessRate returns the fraction of targets that succeeded, 0 for an
// empty batch.
func (r *BatchReport) SuccessRate() float64 {
	if len(r.Outcomes) == 0 {
		return 0
	}
	return float64(r.Succeeded()) / float64(len(r.Outcomes))
}

// Err joins the failures of the batch, or returns nil.
func (r *BatchReport) Err() error {
	var errs []error
	for _, o := range r.Outcomes {
		if o.Err != nil {
			errs = append(errs, fmt.Errorf("%s -> %s: %w", o.Language, o.Target, o.Err))
		}
	}
	return errors.Join(errs...)
}

// Batch augments every target in plan. Each language's corpus is fetched
// and counted once and shared by its targets. A failing target is recorded
// and the batch moves on; a failed fetch fails only that language's
// targets. With dryRun set no file is written.
func (a *Augmenter) Batch(ctx context.Context, plan []BatchTarget, dryRun bool) *BatchReport {
	start := time.Now()
	report := &BatchReport{RunID: xid.New().String()}
	logger := a.logger.With("run", report.RunID)
	logger.Info("Augmenting lexicons in batch", "languages", len(plan), "dry_run", dryRun)

	for _, entry := range plan {
		c, err := a.loadCorpus(ctx, entry.Language, report.RunID, logger)

		for _, target := range entry.Targets {
			outcome := BatchOutcome{Language: entry.Language, Target: target}
			switch code, terr := TargetCode(target); {
			case terr != nil:
				outcome.Err = invalidTarget(report.RunID, target, terr)
			case err != nil:
				outcome.Err = err
			default:
				outcome.Target = code
				outcome.Result, outcome.Err = a.apply(c, code, report.RunID, logger, dryRun, time.Now())
			}
			report.Outcomes = append(report.Outcomes, outcome)
		}
	}

	report.Duration = time.Since(start)
	logger.Info("Batch finished",
		"succeeded", report.Succeeded(),
		"failed", report.Failed(),
		"duration", report.Duration)
	return report
}
