package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eburon/echo-lexicon/internal/lexicon"
	"github.com/eburon/echo-lexicon/internal/validate"
)

var (
	validateText     string
	validateLang     string
	validateFile     string
	validateLexicons bool

	validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Check input and lexicon files",
		Long: paragraph(fmt.Sprintf("\n%s text, a language code, a file path, or every lexicon file. Exits non-zero on the first failure.",
			keyword("Validate"))),
		Example: paragraph("echo-lexicon validate --language nl_be --text \"Het huis\"\necho-lexicon validate --lexicons"),
		Args:    cobra.NoArgs,
		RunE:    runValidate,
	}
)

func init() {
	flags := validateCmd.Flags()
	flags.StringVar(&validateText, "text", "", "text to check")
	flags.StringVarP(&validateLang, "language", "l", "", "language code to check")
	flags.StringVar(&validateFile, "file", "", "file path to check")
	flags.BoolVar(&validateLexicons, "lexicons", false, "parse every lexicon file and report malformed lines")
	validateCmd.MarkFlagsOneRequired("text", "language", "file", "lexicons")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	a, err := newApp()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("text") {
		if err := validate.Text(validateText, a.env.MaxTextLength); err != nil {
			return err
		}
		fmt.Fprintln(out, "text:", keyword("ok"))
	}
	if validateLang != "" {
		if err := validateLanguage(validateLang); err != nil {
			return err
		}
		name, _ := validate.LanguageName(validateLang)
		fmt.Fprintf(out, "language: %s (%s)\n", keyword("ok"), name)
	}
	if validateFile != "" {
		if err := validate.FilePath(validateFile); err != nil {
			return err
		}
		fmt.Fprintln(out, "file:", keyword("ok"))
	}
	if validateLexicons {
		return checkLexicons(cmd, a)
	}
	return nil
}

func checkLexicons(cmd *cobra.Command, a *app) error {
	dir, err := a.paths.LexiconDir()
	if err != nil {
		return err
	}
	m := lexicon.NewManager(dir, lexicon.WithLogger(a.logger.WithPrefix("lexicon")))
	report := m.LoadAll()

	var rows [][]string
	for _, code := range m.SupportedLanguages() {
		lex, _ := m.Snapshot().Get(code)
		rows = append(rows, []string{
			filepath.Base(lex.Path),
			fmt.Sprint(lex.Stats.Entries),
			fmt.Sprint(lex.Stats.Duplicates),
			fmt.Sprint(len(lex.Stats.Warnings)),
		})
	}
	if err := writeTable(cmd.OutOrStdout(), []string{"FILE", "ENTRIES", "DUPLICATES", "MALFORMED"}, rows); err != nil {
		return err
	}

	if len(report.Failed) > 0 {
		errs := make([]error, 0, len(report.Failed))
		for path, err := range report.Failed {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
		}
		return errors.Join(errs...)
	}
	if report.Warnings > 0 {
		return fmt.Errorf("%d malformed lexicon lines", report.Warnings)
	}
	return nil
}
