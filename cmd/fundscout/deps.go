package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jlindqvist/fundscout/internal/config"
	"github.com/jlindqvist/fundscout/internal/extraction"
	"github.com/jlindqvist/fundscout/internal/fetch"
	"github.com/jlindqvist/fundscout/internal/llm"
	"github.com/jlindqvist/fundscout/internal/parsing"
	"github.com/jlindqvist/fundscout/internal/pipeline"
	"github.com/jlindqvist/fundscout/internal/search"
)

// resolveCredentials fills credentials from the environment when flags and
// config left them empty.
func resolveCredentials(cfg *config.Config) error {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("Gemini API key is required (--api-key flag, config file, or GEMINI_API_KEY env var)")
	}

	if cfg.SearchAPIKey == "" {
		cfg.SearchAPIKey = os.Getenv("GOOGLE_SEARCH_API_KEY")
	}
	if cfg.SearchAPIKey == "" {
		return fmt.Errorf("search API key is required (config file or GOOGLE_SEARCH_API_KEY env var)")
	}

	if cfg.SearchEngineID == "" {
		cfg.SearchEngineID = os.Getenv("GOOGLE_SEARCH_CX")
	}
	if cfg.SearchEngineID == "" {
		return fmt.Errorf("search engine ID is required (config file or GOOGLE_SEARCH_CX env var)")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	}
	return nil
}

// buildPipeline wires the real collaborators behind the pipeline interfaces.
// The returned cleanup closes the LLM client and redis connection.
func buildPipeline(ctx context.Context, cfg config.Config) (*pipeline.Pipeline, func(), error) {
	client, err := llm.NewClient(ctx, nil, cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	provider, err := search.NewGoogleProvider(ctx, cfg.SearchAPIKey, cfg.SearchEngineID)
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to create search provider: %w", err)
	}

	fetchOpts := fetch.DefaultOptions()
	fetchOpts.UseBrowser = cfg.UseBrowser
	var fetcher fetch.Fetcher = fetch.NewHTTPFetcher(fetchOpts)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
		fetcher = fetch.NewCachedFetcher(fetcher, rdb, nil)
	}

	parser := parsing.NewLLMParser(client)

	pipeConfig := pipeline.DefaultConfig()
	if cfg.MaxResultsPerQuery > 0 {
		pipeConfig.MaxResultsPerQuery = cfg.MaxResultsPerQuery
	}
	if cfg.Concurrency > 0 {
		pipeConfig.Concurrency = cfg.Concurrency
	}
	if cfg.RunTimeoutSeconds > 0 {
		pipeConfig.RunTimeout = time.Duration(cfg.RunTimeoutSeconds) * time.Second
	}

	pipe := pipeline.New(pipeline.Deps{
		Parser:    parser,
		Queries:   parser,
		Provider:  provider,
		Fetcher:   fetcher,
		Extractor: extraction.NewLLMExtractor(client),
	}, pipeConfig)

	cleanup := func() {
		_ = client.Close()
		if rdb != nil {
			_ = rdb.Close()
		}
	}
	return pipe, cleanup, nil
}
