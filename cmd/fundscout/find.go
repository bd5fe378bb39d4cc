package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jlindqvist/fundscout/internal/config"
	"github.com/jlindqvist/fundscout/internal/observability"
	"github.com/jlindqvist/fundscout/internal/types"
)

var findCmd = &cobra.Command{
	Use:   "find [description]",
	Short: "Run one discovery search from the command line",
	Long: `Runs the full pipeline for a free-text description of who to find, e.g.:

  fundscout find "women over 50 with type 2 diabetes near Boston"

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFind,
}

var (
	findConfigPath string
	findAPIKey     string
	findMaxResults int
	findUseBrowser bool
	findVerbose    bool
	findJSON       bool
)

func init() {
	findCmd.Flags().StringVar(&findConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	findCmd.Flags().StringVar(&findAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	findCmd.Flags().IntVar(&findMaxResults, "max-results", 0, "Maximum hits requested per query (1-10)")
	findCmd.Flags().BoolVar(&findUseBrowser, "use-browser", false, "Use headless browser for SPA pages (requires Chrome)")
	findCmd.Flags().BoolVarP(&findVerbose, "verbose", "v", false, "Print criteria, weights, and progress")
	findCmd.Flags().BoolVar(&findJSON, "json", false, "Print the final summary as JSON")

	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	description := strings.Join(args, " ")

	cfg, err := loadMergedConfig(cmd, findConfigPath)
	if err != nil {
		return err
	}
	if err := resolveCredentials(&cfg); err != nil {
		return err
	}

	pipe, cleanup, err := buildPipeline(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	printer := observability.NewPrinter(os.Stdout)

	events := make(chan types.Event, 64)
	done := make(chan struct{})
	var summary *types.RunSummary
	var runErr error
	go func() {
		defer close(done)
		summary, runErr = pipe.Run(ctx, description, events)
	}()

	for event := range events {
		switch event.Type {
		case types.EventStatus:
			if findVerbose {
				fmt.Printf("[%s] %s\n", event.Step, event.Message)
			}
		case types.EventCriteria:
			if findVerbose {
				if criteria, ok := event.Data.(*types.Criteria); ok {
					printer.PrintCriteria(criteria)
				}
			}
		case types.EventCandidatesFound:
			if findVerbose {
				fmt.Printf("Found %d candidate pages\n", event.Count)
			}
		}
	}
	<-done

	if runErr != nil {
		return runErr
	}

	if findJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(summary)
	}

	if findVerbose {
		printer.PrintWeights(summary.Weights)
	}
	printer.PrintMatches(summary.Matches)
	return nil
}

// loadMergedConfig loads the optional config file and applies CLI overrides
// and built-in defaults.
func loadMergedConfig(cmd *cobra.Command, path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	// CLI flags take priority when explicitly set.
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = findAPIKey
	}
	if cmd.Flags().Changed("max-results") {
		cfg.MaxResultsPerQuery = findMaxResults
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = findUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = findVerbose
	}

	cfg = cfg.MergeWithDefaults(config.DefaultConfig())
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
