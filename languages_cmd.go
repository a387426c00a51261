package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/eburon/echo-lexicon/internal/dataset"
	"github.com/eburon/echo-lexicon/internal/validate"
)

var (
	languagesAll      bool
	languagesDatasets bool

	languagesCmd = &cobra.Command{
		Use:   "languages",
		Short: "List languages with a loaded lexicon",
		Long: paragraph(fmt.Sprintf("\n%s the languages that have a lexicon file. Use --all for every supported code and --datasets for the corpus languages augment can use.",
			keyword("List"))),
		Args: cobra.NoArgs,
		RunE: runLanguages,
	}
)

func init() {
	languagesCmd.Flags().BoolVarP(&languagesAll, "all", "a", false, "list every supported language code")
	languagesCmd.Flags().BoolVar(&languagesDatasets, "datasets", false, "list the corpus languages")
}

func runLanguages(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if languagesDatasets {
		rows := [][]string{}
		for _, name := range dataset.AvailableLanguages() {
			rows = append(rows, []string{name})
		}
		return writeTable(out, []string{"DATASET LANGUAGE"}, rows)
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	m, err := a.manager()
	if err != nil {
		return err
	}
	set := m.Snapshot()

	entries := func(code string) string {
		if lex, ok := set.Get(code); ok {
			return strconv.Itoa(lex.Len())
		}
		return "-"
	}

	var rows [][]string
	if languagesAll {
		for _, l := range validate.Languages() {
			rows = append(rows, []string{l.Code, l.Name, entries(l.Code)})
		}
	} else {
		for _, code := range m.SupportedLanguages() {
			name, _ := validate.LanguageName(code)
			rows = append(rows, []string{code, name, entries(code)})
		}
	}

	if len(rows) == 0 {
		msg := fmt.Sprintf("No lexicons found in %s", m.Dir())
		if styled(out) {
			msg = faint(msg)
		}
		_, err := fmt.Fprintln(out, msg)
		return err
	}
	return writeTable(out, []string{"CODE", "NAME", "ENTRIES"}, rows)
}
