package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/chzyer/readline"

	"github.com/hession/pokemate/internal/config"
	"github.com/hession/pokemate/internal/logger"
	"github.com/hession/pokemate/internal/tools"
)

const (
	Version = "0.1.0"

	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorRed    = "\033[31m"
	colorGray   = "\033[90m"
)

// Run starts the interactive tool shell
func Run(cfg *config.Config, registry *tools.Registry) error {
	printWelcome(os.Stdout)
	return runREPL(cfg, registry)
}

// printWelcome prints welcome message
func printWelcome(out io.Writer) {
	fmt.Fprintf(out, "\n%sPokemate v%s%s - PokeAPI tools at your prompt\n", colorCyan, Version, colorReset)
	fmt.Fprintf(out, "%sType /help for help, /exit to quit%s\n\n", colorGray, colorReset)
}

// getHistoryFilePath returns the history file path
func getHistoryFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	historyDir := filepath.Join(homeDir, ".pokemate")
	if err := os.MkdirAll(historyDir, 0755); err != nil {
		return ""
	}
	return filepath.Join(historyDir, "history")
}

// toolCompleter completes tool names at the start of a line
func toolCompleter(registry *tools.Registry) *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem("/help"),
		readline.PcItem("/tools"),
		readline.PcItem("/config"),
		readline.PcItem("/exit"),
	}
	for _, tool := range registry.List() {
		items = append(items, readline.PcItem(tool.Name()))
	}
	return readline.NewPrefixCompleter(items...)
}

// runREPL runs the interactive REPL with readline support
func runREPL(cfg *config.Config, registry *tools.Registry) error {
	rlConfig := &readline.Config{
		Prompt:          fmt.Sprintf("%spokemate> %s", colorGreen, colorReset),
		HistoryFile:     getHistoryFilePath(),
		HistoryLimit:    1000,
		AutoComplete:    toolCompleter(registry),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:      true,
		DisableAutoSaveHistory: false,
	}

	rl, err := readline.NewEx(rlConfig)
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle termination signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
			rl.Close()
		case <-ctx.Done():
		}
	}()

	out := rl.Stdout()
	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				fmt.Fprintf(out, "%sPress Ctrl+D or type /exit to quit%s\n", colorYellow, colorReset)
				continue
			}
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				fmt.Fprintf(out, "\n%sGoodbye!%s\n", colorCyan, colorReset)
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		// Handle built-in commands
		if strings.HasPrefix(input, "/") {
			if handleCommand(out, input, cfg, registry) {
				continue
			}
			return nil // /exit command
		}

		runTool(ctx, out, registry, input)
	}
}

// runTool parses and executes one "tool key=value ..." line
func runTool(ctx context.Context, out io.Writer, registry *tools.Registry, input string) {
	name, args, err := ParseInvocation(input)
	if err != nil {
		fmt.Fprintf(out, "%sError: %v%s\n", colorRed, err, colorReset)
		return
	}

	result, err := registry.Execute(ctx, name, args)
	if err != nil {
		fmt.Fprintf(out, "%sError: %v%s\n", colorRed, err, colorReset)
		fmt.Fprintln(out, "Type /tools for available tools")
		return
	}

	color := colorReset
	if result.IsError {
		color = colorYellow
		logger.Debug("repl: %s returned an error result", name)
	}
	fmt.Fprintf(out, "%s%s%s\n", color, result.Text, colorReset)
}

// handleCommand handles built-in commands, returns true to continue loop, false to exit
func handleCommand(out io.Writer, cmd string, cfg *config.Config, registry *tools.Registry) bool {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return true
	}

	command := strings.ToLower(parts[0])

	switch command {
	case "/help":
		printHelp(out, registry)
		return true

	case "/tools":
		printTools(out, registry)
		return true

	case "/exit", "/quit", "/q":
		fmt.Fprintf(out, "%sGoodbye!%s\n", colorCyan, colorReset)
		return false

	case "/config":
		if cfg == nil {
			fmt.Fprintf(out, "%sNo configuration loaded%s\n", colorRed, colorReset)
		} else {
			fmt.Fprintln(out, cfg.String())
		}
		return true

	default:
		fmt.Fprintf(out, "%sUnknown command: %s%s\n", colorYellow, cmd, colorReset)
		fmt.Fprintln(out, "Type /help for available commands")
		return true
	}
}

// printTools lists every tool with its parameters
func printTools(out io.Writer, registry *tools.Registry) {
	for _, tool := range registry.List() {
		fmt.Fprintf(out, "  %s%s%s - %s\n", colorCyan, tool.Name(), colorReset, tool.Description())
		for _, p := range tool.Parameters() {
			required := ""
			if p.Required {
				required = ", required"
			}
			fmt.Fprintf(out, "      %s (%s%s)  %s%s%s\n", p.Name, p.Type, required, colorGray, p.Description, colorReset)
		}
	}
}

// printHelp prints help information
func printHelp(out io.Writer, registry *tools.Registry) {
	fmt.Fprintf(out, `
%sPokemate Help%s

%sBuilt-in Commands:%s
  /help           - Show this help message
  /tools          - List tools and their parameters
  /config         - Show current configuration
  /exit           - Exit program

%sCalling Tools:%s
  <tool> key=value ...    Values with spaces go in double quotes

%sExamples:%s
  get_pokemon_info name_or_id=pikachu
  search_pokemon_by_type type=fire limit=5
  compare_pokemon_stats a=charizard b=blastoise

`, colorCyan, colorReset, colorYellow, colorReset, colorYellow, colorReset, colorYellow, colorReset)

	fmt.Fprintf(out, "%sAvailable Tools:%s\n", colorYellow, colorReset)
	for _, tool := range registry.List() {
		fmt.Fprintf(out, "  • %s\n", tool.Name())
	}
	fmt.Fprintln(out)
}
