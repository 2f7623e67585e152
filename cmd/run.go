package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RdoLimaJunior/cosmus/internal/app"
	"github.com/RdoLimaJunior/cosmus/internal/assistant"
	"github.com/RdoLimaJunior/cosmus/internal/badges"
	"github.com/RdoLimaJunior/cosmus/internal/kvstore"
	"github.com/RdoLimaJunior/cosmus/internal/llm"
	"github.com/RdoLimaJunior/cosmus/internal/performance"
	"github.com/RdoLimaJunior/cosmus/internal/progression"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Open the star map",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.LaunchStarmap)
	},
}

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start a practice quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.LaunchPractice)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, launch string) error {
	kv, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer kv.Close()

	evaluator, err := badges.NewEvaluator()
	if err != nil {
		return fmt.Errorf("load badge catalog: %w", err)
	}

	opts := app.Options{
		Progress:  progression.NewStore(kv),
		Evaluator: evaluator,
		History:   performance.NewHistory(kv),
		KV:        kv,
		Launch:    launch,
	}

	asst, err := newAssistant(cmd.Context(), kv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "AI companion not configured:", err)
		fmt.Fprintln(os.Stderr, "Chat and summaries will be unavailable.")
	} else {
		opts.Assistant = asst
	}

	return app.Run(opts)
}

// newAssistant builds the LLM-backed assistant from the environment.
// COSMUS_LLM_PROVIDER selects a provider explicitly; otherwise standard
// API key variables are probed.
func newAssistant(ctx context.Context, kv kvstore.Store) (*assistant.Assistant, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := llm.ConfigFromEnv()
	if os.Getenv("COSMUS_LLM_PROVIDER") == "" {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, errors.New("set COSMUS_LLM_PROVIDER or an API key env var (GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY)")
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(ctx, cfg, kv)
	if err != nil {
		return nil, err
	}

	return assistant.New(provider, assistant.DefaultConfig()), nil
}
