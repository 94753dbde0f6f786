package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/config"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/logger"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/server"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/server/ratelimit"
)

var (
	serveConfigPath string
	serveAddr       string
	serveAPIKey     string
	serveModel      string
	serveVerbose    bool
	serveJSONLogs   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server exposing /healthz, /score, /counterfactual and /action.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default :8080)")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API key for the section classifier (optional, defaults to GEMINI_API_KEY env var)")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Gemini model override")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Debug logging")
	serveCmd.Flags().BoolVar(&serveJSONLogs, "json-logs", false, "Structured JSON log output")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("addr") {
		cfg.Addr = serveAddr
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = serveAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = serveModel
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = serveVerbose
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.JSONLogs = serveJSONLogs
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg = cfg.MergeWithDefaults(config.Config{Addr: config.DefaultAddr})

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	srv := server.New(server.Config{
		Addr:      cfg.Addr,
		APIKey:    cfg.APIKeyFromEnv(),
		Model:     cfg.Model,
		Logger:    log,
		RateLimit: rateLimitConfig(cfg),
	})
	return srv.Start()
}

// rateLimitConfig translates the config file's rate knobs into limiter
// settings. With both knobs unset the built-in endpoint tiers apply.
func rateLimitConfig(cfg config.Config) *ratelimit.Config {
	if cfg.RateLimitRPS == 0 && cfg.RateLimitBurst == 0 {
		return nil
	}

	rl := ratelimit.DefaultConfig()
	if cfg.RateLimitRPS > 0 {
		rl.DefaultLimit = int(cfg.RateLimitRPS * rl.DefaultWindow.Seconds())
	}
	for i := range rl.EndpointConfigs {
		ec := &rl.EndpointConfigs[i]
		if ec.Limit <= 0 {
			continue
		}
		if cfg.RateLimitRPS > 0 {
			ec.Limit = int(cfg.RateLimitRPS * ec.Window.Seconds())
		}
		if cfg.RateLimitBurst > 0 {
			ec.Burst = cfg.RateLimitBurst
		}
	}
	return rl
}
