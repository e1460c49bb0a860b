package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/uniflowhq/uniflow/internal/catalog"
	"github.com/uniflowhq/uniflow/internal/cli"
	"github.com/uniflowhq/uniflow/internal/db"
	"github.com/uniflowhq/uniflow/internal/intelligence"
	"github.com/uniflowhq/uniflow/internal/llm"
	"github.com/uniflowhq/uniflow/internal/rank"
	"github.com/uniflowhq/uniflow/internal/repository"
	"github.com/uniflowhq/uniflow/internal/service"
)

const (
	cacheEntries = 10_000
	cacheTTL     = 0 // entries live until evicted
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	// Catalog paths: env vars or ./data defaults.
	dataDir := os.Getenv("UNIFLOW_DATA")
	if dataDir == "" {
		dataDir = "./data"
	}
	coursesPath := envOr("UNIFLOW_COURSES", filepath.Join(dataDir, "courses.json"))
	requirementsPath := envOr("UNIFLOW_REQUIREMENTS", filepath.Join(dataDir, "requirements.json"))

	store, err := catalog.Load(coursesPath, requirementsPath)
	if err != nil {
		return err
	}

	// DB path: env var or default ~/.uniflow/uniflow.db
	dbPath := os.Getenv("UNIFLOW_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".uniflow", "uniflow.db")
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	ranker, rankerName, err := buildRanker(store)
	if err != nil {
		return err
	}

	var observer service.UseCaseObserver
	if os.Getenv("UNIFLOW_LOG_USE_CASES") == "true" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	historyRepo := repository.NewSQLitePlanHistoryRepo(database)

	app := &cli.App{
		Plans:   service.NewPlanService(store, ranker, rankerName, historyRepo, observer),
		Degrees: service.NewDegreeService(store, ranker),
		History: service.NewHistoryService(historyRepo),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Intelligence services only when the LLM layer is enabled.
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var llmObserver llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			llmObserver = llm.NewLogObserver(os.Stderr)
		}
		llmClient := llm.NewOllamaClient(llmCfg, llmObserver)

		app.Position = intelligence.NewPositionService(llmClient)
		app.Advisor = intelligence.NewAdvisorService(llmClient)
	}

	return cli.NewRootCmd(app).Execute()
}

// buildRanker selects the ranking backend: the keyword ranker by default,
// or Gemini embeddings behind a cache when UNIFLOW_RANKER=gemini.
func buildRanker(store *catalog.Store) (rank.Ranker, string, error) {
	switch envOr("UNIFLOW_RANKER", "keyword") {
	case "keyword":
		return rank.NewKeywordRanker(store), "keyword", nil
	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, "", fmt.Errorf("UNIFLOW_RANKER=gemini requires GEMINI_API_KEY")
		}
		model := envOr("UNIFLOW_GEMINI_MODEL", "gemini-embedding-001")
		inner, err := rank.NewGeminiRanker(context.Background(), apiKey, model, store)
		if err != nil {
			return nil, "", fmt.Errorf("initializing gemini ranker: %w", err)
		}
		cached, err := rank.NewCachedRanker(inner, cacheEntries, cacheTTL)
		if err != nil {
			return nil, "", err
		}
		return cached, "gemini", nil
	default:
		return nil, "", fmt.Errorf("unknown ranker %q (want keyword or gemini)", os.Getenv("UNIFLOW_RANKER"))
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
