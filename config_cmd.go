package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/charmbracelet/x/editor"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultConfig = `# data directory (default: $EBURON_ECHO_DATA_DIR or the user data dir)
# data_dir: "~/.local/share/eburon-echo"
# lexicon directory (default: <data_dir>/lexicons)
# lexicon_dir: ""
# corpus download cache (default: <data_dir>/datasets)
# dataset_dir: ""

log:
  # debug, info, warn or error
  level: "info"
  # file: "/tmp/echo-lexicon.log"

serve:
  addr: "127.0.0.1:8765"
  # reload lexicons when files change
  watch: false

augment:
  # minimum corpus frequency for a new word
  threshold: 5
  # dataset split: train, dev or test
  split: "train"

dataset:
  # base_url: "https://huggingface.co/datasets/facebook/multilingual_librispeech/resolve/main"

cache:
  # size limit in megabytes
  max_size: 4096
  # days before a cached corpus is pruned
  ttl_days: 30
`

var configCmd = &cobra.Command{
	Use:     "config",
	Hidden:  false,
	Short:   "Edit the echo-lexicon config file",
	Long:    paragraph(fmt.Sprintf("\n%s the echo-lexicon config file. EDITOR selects the editor. A missing config file is created with defaults first.", keyword("Edit"))),
	Example: paragraph("echo-lexicon config\necho-lexicon config --config path/to/lexicon.yml"),
	Args:    cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		if err := ensureConfigFile(); err != nil {
			return err
		}

		c, err := editor.Cmd("echo-lexicon", configFile)
		if err != nil {
			return fmt.Errorf("unable to set config file: %w", err)
		}
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		if err := c.Run(); err != nil {
			return fmt.Errorf("unable to run command: %w", err)
		}

		fmt.Println("Wrote config file to:", configFile)
		return nil
	},
}

func ensureConfigFile() error {
	if configFile == "" {
		configFile = viper.GetViper().ConfigFileUsed()
		if err := os.MkdirAll(filepath.Dir(configFile), 0o755); err != nil { //nolint:gosec
			return fmt.Errorf("could not write configuration file: %w", err)
		}
	}

	if ext := path.Ext(configFile); ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("'%s' is not a supported configuration type: use '%s' or '%s'", ext, ".yaml", ".yml")
	}

	if _, err := os.Stat(configFile); errors.Is(err, fs.ErrNotExist) {
		// File doesn't exist yet, create all necessary directories and
		// write the default config file
		if err := os.MkdirAll(filepath.Dir(configFile), 0o700); err != nil {
			return fmt.Errorf("unable create directory: %w", err)
		}

		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("unable to create config file: %w", err)
		}
		defer func() { _ = f.Close() }()

		if _, err := f.WriteString(defaultConfig); err != nil {
			return fmt.Errorf("unable to write config file: %w", err)
		}
	} else if err != nil { // some other error occurred
		return fmt.Errorf("unable to stat config file: %w", err)
	}
	return nil
}
