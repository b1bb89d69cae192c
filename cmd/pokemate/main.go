package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hession/pokemate/internal/cli"
	"github.com/hession/pokemate/internal/config"
	"github.com/hession/pokemate/internal/logger"
	"github.com/hession/pokemate/internal/mcpserver"
	"github.com/hession/pokemate/internal/tools"
)

var (
	version = "0.1.0"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Close()
		os.Exit(1)
	}
	logger.Close()
}

func newRootCmd() *cobra.Command {
	var configDir string

	rootCmd := &cobra.Command{
		Use:   "pokemate",
		Short: "Pokemate - PokeAPI tools for MCP clients",
		Long: `Pokemate exposes the public PokeAPI as a set of MCP tools.

Tools:
  • get_pokemon_info             Full record of one Pokemon
  • get_pokemon_evolution_chain  Evolution tree of a species
  • search_pokemon_by_type       Pokemon of a type, sorted by dex number
  • get_random_pokemon           Record of a random Pokemon
  • compare_pokemon_stats        Stat-by-stat comparison of two Pokemon
  • get_pokemon_moves            Learnable moves of a Pokemon

Without a subcommand, pokemate serves MCP over stdio.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if configDir != "" {
				config.SetConfigDir(configDir)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ./config)")

	// serve subcommand
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	// call subcommand
	callCmd := &cobra.Command{
		Use:   "call <tool> [key=value ...]",
		Short: "Invoke one tool and print its JSON result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, registry, err := bootstrap()
			if err != nil {
				return err
			}

			toolArgs, err := cli.ParseArgs(args[1:])
			if err != nil {
				return err
			}

			result, err := registry.Execute(cmd.Context(), args[0], toolArgs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Text)
			if result.IsError {
				return fmt.Errorf("%s returned an error", args[0])
			}
			return nil
		},
	}

	// tools subcommand
	toolsCmd := &cobra.Command{
		Use:   "tools",
		Short: "List tool schemas as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, registry, err := bootstrap()
			if err != nil {
				return err
			}
			payload, err := json.MarshalIndent(registry.GetSchemas(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode schemas: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			return nil
		},
	}

	// repl subcommand
	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive tool shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, registry, err := bootstrap()
			if err != nil {
				return err
			}
			return cli.Run(cfg, registry)
		},
	}

	// config subcommand
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.String())

			path, _ := config.ConfigPath()
			fmt.Fprintf(cmd.OutOrStdout(), "\nConfig file path: %s\n", path)
			return nil
		},
	}

	// version subcommand
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Pokemate v%s\n", version)
		},
	}

	rootCmd.AddCommand(serveCmd, callCmd, toolsCmd, replCmd, configCmd, versionCmd)
	return rootCmd
}

// bootstrap loads configuration, starts the logger and builds the tool
// registry.
func bootstrap() (*config.Config, *tools.Registry, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	if err := logger.Init(logger.Config{
		LogDir:     config.LogDir(),
		Level:      level,
		MaxDays:    cfg.Log.MaxDays,
		ConsoleOut: cfg.Log.Console,
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logConfigInfo(cfg)
	return cfg, tools.NewDefaultRegistry(cfg), nil
}

func runServe() error {
	_, registry, err := bootstrap()
	if err != nil {
		return err
	}

	s, err := mcpserver.New(registry, version)
	if err != nil {
		return err
	}
	return mcpserver.Serve(s)
}

// logConfigInfo logs the effective configuration
func logConfigInfo(cfg *config.Config) {
	logger.Info("pokemate v%s starting", version)
	logger.Info("PokeAPI: %s (timeout %ds, user agent %q)", cfg.PokeAPI.BaseURL, cfg.PokeAPI.TimeoutSeconds, cfg.PokeAPI.UserAgent)
	logger.Info("Tools: default limit %d, roster workers %d, random max id %d",
		cfg.Tools.DefaultLimit, cfg.Tools.RosterWorkers, cfg.Tools.RandomMaxID)
}
