// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the rfp-parser CLI. It reads one
// plain-text RFP and writes a starter JSON payload and Markdown summary.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jordangpape-oss/rfp-parser/internal/rfp"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the rfp-parser command. It takes the RFP path as its only argument.
var rootCmd = &cobra.Command{
	Use:   "rfp-parser <rfp-path>",
	Short: "Stub parser for influencer RFPs",
	Long: `rfp-parser reads a plain-text Request for Proposal and generates starter
JSON and Markdown files in outputs/rfp_summaries.

Structured extraction is not implemented yet: the JSON payload is the schema
template with the title, source, and received date filled in, plus the raw
RFP text for manual follow-up.`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE:    runParse,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./rfp-parser.yaml or ~/.config/rfp-parser/rfp-parser.yaml)")

	flags := rootCmd.Flags()
	flags.String("output-dir", rfp.DefaultOutputDir, "directory for generated summaries")
	flags.String("schema-template", "", "YAML file replacing the built-in schema template")
	flags.Int("missing-exit-code", 0, "exit code when the RFP file does not exist")
	flags.Bool("html", false, "also render the Markdown summary to an HTML preview")
	flags.String("log-level", "warn", "diagnostic log level: debug, info, warn, or error")
	flags.String("log-format", "console", "diagnostic log format: console or json")
	flags.Bool("no-color", false, "disable colored notices")

	for key, flag := range map[string]string{
		"output_dir":        "output-dir",
		"schema_template":   "schema-template",
		"missing_exit_code": "missing-exit-code",
		"html":              "html",
		"log_level":         "log-level",
		"log_format":        "log-format",
		"no_color":          "no-color",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", flag, err))
		}
	}
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: could not load .env: %v\n", err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("rfp-parser")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "rfp-parser"))
		}
	}

	viper.SetEnvPrefix("RFP_PARSER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		os.Exit(1)
	}
}
