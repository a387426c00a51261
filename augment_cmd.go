package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eburon/echo-lexicon/internal/augment"
	"github.com/eburon/echo-lexicon/internal/dataset"
)

var (
	augmentDryRun bool
	augmentLimit  int
	augmentAll    bool

	augmentCmd = &cobra.Command{
		Use:   "augment [LANGUAGE TARGET]",
		Short: "Add frequent corpus words to a lexicon",
		Long: paragraph(fmt.Sprintf("\n%s a lexicon with words that occur often in the Multilingual LibriSpeech transcripts for LANGUAGE. LANGUAGE is a dataset name (dutch) or a lexicon code (nl, nl_be). TARGET is the lexicon to extend, e.g. nl or nl_be.txt. New words get a [word] placeholder pronunciation. With --all, every corpus language extends all of its lexicons and a summary is printed.",
			keyword("Extend"))),
		Example: paragraph("echo-lexicon augment dutch nl\necho-lexicon augment nl_be nl_be --dry-run\necho-lexicon augment --all"),
		Args: func(cmd *cobra.Command, args []string) error {
			if augmentAll {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: runAugment,
	}
)

func init() {
	flags := augmentCmd.Flags()
	flags.Int("threshold", augment.DefaultThreshold, "minimum corpus frequency for a new word")
	flags.String("split", dataset.DefaultSplit, "dataset split: train, dev or test")
	flags.Duration("timeout", 0, "corpus download timeout (default $EBURON_ECHO_FETCH_TIMEOUT or 10m)")
	flags.BoolVarP(&augmentDryRun, "dry-run", "n", false, "list the words that would be added without writing")
	flags.IntVar(&augmentLimit, "show", 20, "number of words to print")
	flags.BoolVar(&augmentAll, "all", false, "extend every lexicon that has a corpus language")

	_ = viper.BindPFlag("augment.threshold", flags.Lookup("threshold"))
	_ = viper.BindPFlag("augment.split", flags.Lookup("split"))
}

func runAugment(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	dir, err := a.paths.LexiconDir()
	if err != nil {
		return err
	}
	c, err := a.corpusCache(false)
	if err != nil {
		return err
	}
	defer c.Close() //nolint:errcheck

	timeout := a.env.FetchTimeout
	if d, _ := cmd.Flags().GetDuration("timeout"); d > 0 {
		timeout = d
	}

	aug := augment.New(dir, a.fetcher(c),
		augment.WithThreshold(viper.GetInt("augment.threshold")),
		augment.WithSplit(viper.GetString("augment.split")),
		augment.WithFetchTimeout(timeout),
		augment.WithLogger(a.logger.WithPrefix("augment")),
		augment.WithProgress(a.progressSink()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if augmentAll {
		return printBatchReport(cmd, aug.Batch(ctx, augment.DefaultBatch, augmentDryRun))
	}

	run := aug.Augment
	if augmentDryRun {
		run = aug.Plan
	}
	language := args[0]
	if name, ok := dataset.ResolveLanguage(language); ok {
		language = name
	}
	res, err := run(ctx, language, args[1])
	if err != nil {
		return err
	}
	return printAugmentResult(cmd, res)
}

func printAugmentResult(cmd *cobra.Command, res *augment.Result) error {
	out := cmd.OutOrStdout()

	verb := "Added"
	n := res.Added
	if augmentDryRun {
		verb, n = "Would add", len(res.Candidates)
	}
	fmt.Fprintf(out, "%s %s words to %s (%s existing, %s distinct corpus words, %s)\n",
		verb,
		keyword(humanize.Comma(int64(n))),
		res.Path,
		humanize.Comma(int64(res.Existing)),
		humanize.Comma(int64(res.CorpusWords)),
		res.Duration.Round(time.Millisecond))

	if len(res.Candidates) == 0 {
		return nil
	}
	shown := res.Candidates
	if augmentLimit >= 0 && len(shown) > augmentLimit {
		shown = shown[:augmentLimit]
	}
	rows := make([][]string, 0, len(shown))
	for _, c := range shown {
		rows = append(rows, []string{c.Word, strconv.Itoa(c.Frequency)})
	}
	if err := writeTable(out, []string{"WORD", "FREQUENCY"}, rows); err != nil {
		return err
	}
	if rest := len(res.Candidates) - len(shown); rest > 0 {
		fmt.Fprintf(out, "... and %s more\n", humanize.Comma(int64(rest)))
	}
	if !augmentDryRun {
		fmt.Fprintln(out, "Run id:", res.RunID)
	}
	return nil
}

func printBatchReport(cmd *cobra.Command, report *augment.BatchReport) error {
	out := cmd.OutOrStdout()

	rows := make([][]string, 0, len(report.Outcomes))
	for _, o := range report.Outcomes {
		status, words := "ok", "-"
		switch {
		case o.Err != nil:
			status = "failed: " + o.Err.Error()
		case augmentDryRun:
			words = humanize.Comma(int64(len(o.Result.Candidates)))
		default:
			words = humanize.Comma(int64(o.Result.Added))
		}
		rows = append(rows, []string{o.Language, o.Target, words, status})
	}
	column := "ADDED"
	if augmentDryRun {
		column = "WOULD ADD"
	}
	if err := writeTable(out, []string{"LANGUAGE", "TARGET", column, "STATUS"}, rows); err != nil {
		return err
	}

	fmt.Fprintf(out, "%d/%d targets succeeded (%s%%) in %s\n",
		report.Succeeded(),
		len(report.Outcomes),
		humanize.FtoaWithDigits(report.SuccessRate()*100, 1),
		report.Duration.Round(time.Millisecond))

	if n := report.Failed(); n > 0 {
		return fmt.Errorf("%d of %d targets failed", n, len(report.Outcomes))
	}
	return nil
}
