// Package cli provides the command-line interface for faqbot.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/edudesk/faqbot/internal/corpus"
	"github.com/edudesk/faqbot/internal/dialog"
	"github.com/edudesk/faqbot/internal/models"
)

// Version is set at build time.
var Version = "0.1.0"

var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "faqbot",
	Short: "Institute FAQ chatbot",
	Long: `Faqbot answers free-text student questions against the institute FAQ
corpus. It combines TF-IDF retrieval, synonym-expanded keyword matching and
rule-based intent classification, resolves follow-up questions across turns,
and degrades to suggestions, a clarification prompt or a human handover when
confidence is low.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.AddCommand(askCmd, chatCmd, faqsCmd, serveCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// buildEngine loads the embedded corpus and constructs a dialog engine.
func buildEngine() (*dialog.Engine, []models.FaqEntry, error) {
	entries, err := corpus.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load corpus: %w", err)
	}
	engine := dialog.NewEngine(entries, corpus.BuildSynonymTable(entries), 0, nil, slog.Default())
	return engine, entries, nil
}
