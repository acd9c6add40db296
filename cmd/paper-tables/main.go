// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-tables CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-tables/internal/generate"
	"github.com/pdiddy/paper-tables/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// newRootCmd builds the command tree. Each tree owns its viper instance so
// flag, env, and config-file state never leaks between invocations.
func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "paper-tables [entries...]",
		Short: "Generate Markdown paper tables and splice them into a README",
		Long: `paper-tables reads paper records from a CSV file, a YAML records file, or
manual entries, renders one Markdown table per topic, and writes the tables
into the output README after the marker token. Everything after the marker
is replaced on each run.

Manual entries are seven semicolon-separated fields:

  topic;title;authors;code;arxiv page;project page;summary

Pass them with --entries (repeatable) or as extra arguments.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, v, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./paper-tables.yaml or ~/.config/paper-tables/paper-tables.yaml)")
	flags.String("csv", "", "path to a CSV file with a topic column")
	flags.String("yaml", "", "path to a YAML records file")
	flags.StringArray("entries", nil, "manual entry: topic;title;authors;code;arxiv page;project page;summary")
	flags.String("output", "", "path to the Markdown file to patch")
	flags.String("marker", types.DefaultMarker, "token after which tables are written")

	rootCmd.Flags().Bool("dry-run", false, "print the generated tables instead of writing the output file")

	for _, key := range []string{"csv", "yaml", "output", "marker"} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}

	rootCmd.AddCommand(newPreviewCmd(v), newCheckCmd(v), newVersionCmd())
	return rootCmd
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("paper-tables")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "paper-tables"))
		}
	}

	v.SetEnvPrefix("PAPER_TABLES")
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err == nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", v.ConfigFileUsed())
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if cfgFile == "" && errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("reading config: %w", err)
}

// loadConfig assembles the run configuration from viper-bound flags, the
// config file, and positional entries. Entries bypass viper so commas inside
// summaries are kept.
func loadConfig(cmd *cobra.Command, v *viper.Viper, args []string) types.Config {
	entries, _ := cmd.Flags().GetStringArray("entries")
	entries = append(entries, args...)
	if len(entries) == 0 {
		entries = v.GetStringSlice("entries")
	}
	return types.Config{
		CSVPath:  v.GetString("csv"),
		YAMLPath: v.GetString("yaml"),
		Entries:  entries,
		Output:   v.GetString("output"),
		Marker:   v.GetString("marker"),
	}
}

func runGenerate(cmd *cobra.Command, v *viper.Viper, args []string) error {
	cfg := loadConfig(cmd, v, args)

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		res, err := generate.Render(cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), res.Sections)
		return nil
	}

	_, err := generate.Run(cfg, cmd.ErrOrStderr())
	return err
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
