package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eburon/echo-lexicon/internal/lexicon"
	"github.com/eburon/echo-lexicon/internal/validate"
)

var (
	annotateLanguage string

	annotateCmd = &cobra.Command{
		Use:   "annotate [TEXT...]",
		Short: "Add inline pronunciation hints to text",
		Long: paragraph(fmt.Sprintf("\n%s every known word as word[pronunciation]. Text is read from the arguments, or from stdin when none are given or the argument is -.",
			keyword("Annotate"))),
		Example: paragraph("echo-lexicon annotate -l nl_be \"Het huis is groot.\"\necho \"Hello, world\" | echo-lexicon annotate -l en"),
		RunE:    runAnnotate,
	}
)

func init() {
	annotateCmd.Flags().StringVarP(&annotateLanguage, "language", "l", "", "language code, e.g. nl or nl_be")
	_ = annotateCmd.MarkFlagRequired("language")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	text, err := readTextArg(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	if err := validate.Text(text, a.env.MaxTextLength); err != nil {
		return err
	}
	if err := validateLanguage(annotateLanguage); err != nil {
		return err
	}

	m, err := a.manager()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), lexicon.NewAnnotator(m).Annotate(text, annotateLanguage))
	return err
}

func readTextArg(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	if f, ok := stdin.(*os.File); ok && styled(f) {
		return "", errors.New("no text given: pass it as arguments or pipe it to stdin")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// validateLanguage checks code and adds suggestions to the error for the
// terminal.
func validateLanguage(code string) error {
	err := validate.LanguageCode(code)
	var verr *validate.Error
	if errors.As(err, &verr) && len(verr.Suggestions) > 0 {
		return fmt.Errorf("%w\nDid you mean: %s?", err, strings.Join(verr.Suggestions, ", "))
	}
	return err
}
