package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/valapi/config"
	"github.com/s0up4200/valapi/valorant"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *valorant.Client

	version   = "dev"
	buildTime = "unknown"

	// Command flags
	useCache bool
	language string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "valapi",
	Short: "Query Valorant game asset data from valorant-api.com",
	Long: `valapi is a CLI for the public valorant-api.com service. It fetches
game asset data (agents, buddies, bundles, contracts, ...) as typed
records, with optional in-memory caching and expression filters.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records build metadata injected by the linker
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", v, bt)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&useCache, "cached", false, "serve repeat lookups from the in-memory cache")
	rootCmd.PersistentFlags().StringVarP(&language, "language", "l", "", "display language tag (overrides config)")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	// Override language from command line if specified
	if language != "" {
		cfg.Client.Language = language
	}

	lang, err := valorant.ParseLanguage(cfg.Client.Language)
	if err != nil {
		return err
	}

	client, err = valorant.NewClient(
		valorant.WithBaseURL(cfg.Client.BaseURL),
		valorant.WithLanguage(lang),
		valorant.WithTimeout(cfg.Client.Timeout),
		valorant.WithCacheSize(cfg.Cache.Size),
		valorant.WithCacheTTL(cfg.Cache.TTL),
		valorant.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create valorant-api client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, colors only on a real terminal
	noColor := !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// fetchOptions assembles the per-call options shared by all commands
func fetchOptions() []valorant.FetchOption {
	var opts []valorant.FetchOption
	if useCache {
		opts = append(opts, valorant.WithCached())
	}
	return opts
}
