// Package daemon holds the command line of the dashboard server.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"payzee/internal/platform/config"
)

// CmdName is the name of the root command.
const CmdName = "payzee-dashboard"

// App is the dashboard server command line.
type App struct {
	cmd    *cobra.Command
	viper  *viper.Viper
	config config.Server

	configFile string
	envFile    string
}

// New builds the root command with its serve, session, secret and version
// subcommands.
// Running the root command without a subcommand serves.
func New() (*App, error) {
	a := &App{viper: viper.New()}

	a.cmd = &cobra.Command{
		Use:           CmdName,
		Short:         "Payzee government dashboard server",
		Long:          "Serves the Payzee government dashboard API in front of the Payzee REST backend.",
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Parsing succeeded; later failures are not usage errors.
			a.cmd.SilenceUsage = true
			return a.loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}

	if err := a.installFlags(); err != nil {
		return nil, err
	}
	a.installServe()
	a.installSession()
	a.installSecret()
	a.installVersion()

	return a, nil
}

func (a *App) installFlags() error {
	d := config.Defaults()
	flags := a.cmd.PersistentFlags()

	flags.StringVar(&a.configFile, "config", "", "path to a configuration file (yaml, json or toml)")
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before reading the environment; missing files are ignored")
	flags.String("addr", d.Addr, "address the HTTP server listens on")
	flags.String("environment", d.Environment, "deployment environment (development or production)")
	flags.String("log-level", d.LogLevel, "log level: debug, info, warn or error")
	flags.String("backend-url", d.Backend.BaseURL, "base URL of the Payzee REST API")
	flags.StringSlice("trusted-proxies", nil, "CIDRs allowed to set X-Forwarded-For")

	if err := a.cmd.MarkPersistentFlagFilename("config", "yaml", "yml", "json", "toml"); err != nil {
		return fmt.Errorf("failed to mark config flag as filename: %w", err)
	}

	bindings := map[string]string{
		"addr":             "addr",
		"environment":      "environment",
		"log_level":        "log-level",
		"backend.base_url": "backend-url",
		"trusted_proxies":  "trusted-proxies",
	}
	for key, flag := range bindings {
		if err := a.viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", flag, err)
		}
	}
	return nil
}

func (a *App) installServe() {
	a.cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	})
}

// loadConfig layers the dotenv file, the config file, flags and the
// environment, in increasing order of precedence for the last three.
func (a *App) loadConfig() error {
	if a.envFile != "" {
		if err := godotenv.Load(a.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file %q: %w", a.envFile, err)
		}
	}
	if a.configFile != "" {
		a.viper.SetConfigFile(a.configFile)
		if err := a.viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg, err := config.Load(a.viper)
	if err != nil {
		return err
	}
	a.config = cfg
	return nil
}

// Run executes the command line until ctx is cancelled or the command returns.
func (a *App) Run(ctx context.Context) error {
	return a.cmd.ExecuteContext(ctx)
}

// UsageError reports whether the last failure came from parsing the command line.
func (a *App) UsageError() bool {
	return !a.cmd.SilenceUsage
}

// SetArgs overrides os.Args, for tests.
func (a *App) SetArgs(args ...string) {
	a.cmd.SetArgs(args)
}

// Config is the configuration resolved by the last run.
func (a *App) Config() config.Server {
	return a.config
}

// RootCmd returns the root command.
func (a *App) RootCmd() *cobra.Command {
	return a.cmd
}
