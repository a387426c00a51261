package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	lookupLanguage string

	lookupCmd = &cobra.Command{
		Use:     "lookup WORD...",
		Short:   "Print the pronunciation of words",
		Long:    paragraph(fmt.Sprintf("\n%s words in a language lexicon. Variants fall back to their base language.", keyword("Look up"))),
		Example: paragraph("echo-lexicon lookup -l nl_be huis fiets"),
		Args:    cobra.MinimumNArgs(1),
		RunE:    runLookup,
	}
)

func init() {
	lookupCmd.Flags().StringVarP(&lookupLanguage, "language", "l", "", "language code, e.g. nl or nl_be")
	_ = lookupCmd.MarkFlagRequired("language")
}

func runLookup(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	m, err := a.manager()
	if err != nil {
		return err
	}

	set := m.Snapshot()
	rows := make([][]string, 0, len(args))
	for _, word := range args {
		p, code, ok := set.Resolve(word, lookupLanguage)
		if !ok {
			p, code = "-", "-"
		}
		rows = append(rows, []string{word, p, code})
	}
	return writeTable(cmd.OutOrStdout(), []string{"WORD", "PRONUNCIATION", "LEXICON"}, rows)
}
