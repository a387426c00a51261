// Package main provides the entry point for the echo-lexicon CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile string
	logLevel   string
	logFile    string

	rootCmd = &cobra.Command{
		Use:   "echo-lexicon",
		Short: "Pronunciation lexicons for speech synthesis",
		Long: paragraph(
			fmt.Sprintf("\nLook up, annotate and grow %s for text-to-speech.", keyword("pronunciation lexicons")),
		),
		SilenceErrors:    false,
		SilenceUsage:     true,
		TraverseChildren: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfigFlag(cmd); err != nil {
				return err
			}
			return configureLogging(cmd)
		},
	}
)

func main() {
	closer, err := setupLog()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		_ = closer()
		os.Exit(1)
	}
	_ = closer()
}

func init() {
	tryLoadConfigFromDefaultPlaces()
	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version
	rootCmd.InitDefaultCompletionCmd()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", fmt.Sprintf("config file (default %s)", viper.GetViper().ConfigFileUsed()))
	flags.String("data-dir", "", "data directory (default $EBURON_ECHO_DATA_DIR or the user data dir)")
	flags.String("lexicon-dir", "", "lexicon directory (default <data-dir>/lexicons)")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&logFile, "log-file", "", "also write logs to this file")

	_ = viper.BindPFlag("data_dir", flags.Lookup("data-dir"))
	_ = viper.BindPFlag("lexicon_dir", flags.Lookup("lexicon-dir"))
	_ = viper.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("log.file", flags.Lookup("log-file"))

	viper.SetDefault("log.level", "info")
	viper.SetDefault("serve.addr", "127.0.0.1:8765")
	viper.SetDefault("serve.watch", false)
	viper.SetDefault("augment.threshold", 5)
	viper.SetDefault("augment.split", "train")
	viper.SetDefault("cache.max_size", 4096)
	viper.SetDefault("cache.ttl_days", 30)

	rootCmd.AddCommand(
		annotateCmd,
		lookupCmd,
		languagesCmd,
		augmentCmd,
		serveCmd,
		validateCmd,
		cacheCmd,
		configCmd,
		manCmd,
	)
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "echo-lexicon")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Println("Could not load find configuration directory.")
		os.Exit(1)
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "echo-lexicon")}, dirs...)
	}

	if c := os.Getenv("LEXICON_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("lexicon")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("lexicon")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("Could not parse configuration file", "err", err)
		}
	}

	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Using configuration file", "path", viper.ConfigFileUsed())
		return
	}

	if viper.ConfigFileUsed() == "" {
		configFile = filepath.Join(dirs[0], "lexicon.yml")
	}
	if err := ensureConfigFile(); err != nil {
		log.Error("Could not create default configuration", "error", err)
	}
}

// loadConfigFlag reads the file named by --config in place of the one found
// in the default places.
func loadConfigFlag(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("config") {
		return nil
	}
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", configFile, err)
	}
	log.Debug("Using configuration file", "path", configFile)
	return nil
}
