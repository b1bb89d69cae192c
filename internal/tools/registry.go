package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hession/pokemate/internal/config"
	"github.com/hession/pokemate/internal/logger"
	"github.com/hession/pokemate/internal/pokeapi"
	"github.com/hession/pokemate/internal/pokedex"
)

// Registry tool registry
type Registry struct {
	tools map[string]Tool
	mu    sync.RWMutex
}

// NewRegistry creates a new tool registry
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register registers a tool
func (r *Registry) Register(tool Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := tool.Name()
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool %s already exists", name)
	}

	r.tools[name] = tool
	return nil
}

// Get gets a tool by name
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, exists := r.tools[name]
	return tool, exists
}

// List lists all tools, sorted by name
func (r *Registry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool {
		return tools[i].Name() < tools[j].Name()
	})
	return tools
}

// Result is the encoded outcome of one tool call. Text is indented JSON:
// the success payload, or a pokedex.StructuredError when IsError is set.
type Result struct {
	Text    string
	IsError bool
}

// Execute executes a tool by name. Tool failures are reported in the
// Result; the error is non-nil only for an unknown tool or an encoding
// failure.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (Result, error) {
	tool, exists := r.Get(name)
	if !exists {
		return Result{}, fmt.Errorf("tool not found: %s", name)
	}
	if args == nil {
		args = map[string]any{}
	}

	requestID := uuid.NewString()
	start := time.Now()
	logger.Debug("[%s] %s args=%v", requestID, name, args)

	payload, err := tool.Execute(ctx, args)
	elapsed := time.Since(start).Round(time.Millisecond)
	if err != nil {
		structured := pokedex.Classify(err)
		logger.Warn("[%s] %s failed in %s: kind=%s %s", requestID, name, elapsed, pokedex.KindOf(err), structured.Message)
		return encodeResult(structured, true)
	}

	logger.Info("[%s] %s ok in %s", requestID, name, elapsed)
	return encodeResult(payload, false)
}

func encodeResult(payload any, isError bool) (Result, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return Result{}, fmt.Errorf("failed to encode response: %w", err)
	}
	return Result{Text: string(data), IsError: isError}, nil
}

// ToolSchema tool schema (for tool listings)
type ToolSchema struct {
	Type     string         `json:"type"`
	Function FunctionSchema `json:"function"`
}

// FunctionSchema function schema
type FunctionSchema struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// GetSchemas gets all tool schemas, sorted by name
func (r *Registry) GetSchemas() []ToolSchema {
	tools := r.List()

	schemas := make([]ToolSchema, 0, len(tools))
	for _, tool := range tools {
		schema := ToolSchema{
			Type: "function",
			Function: FunctionSchema{
				Name:        tool.Name(),
				Description: tool.Description(),
				Parameters:  buildParameterSchema(tool.Parameters()),
			},
		}
		schemas = append(schemas, schema)
	}
	return schemas
}

// InputSchema returns the JSON Schema of a tool's arguments.
func InputSchema(tool Tool) (json.RawMessage, error) {
	data, err := json.Marshal(buildParameterSchema(tool.Parameters()))
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema for %s: %w", tool.Name(), err)
	}
	return data, nil
}

// buildParameterSchema builds parameter schema
func buildParameterSchema(params []ParameterDef) map[string]interface{} {
	properties := make(map[string]interface{})
	required := make([]string, 0)

	for _, param := range params {
		prop := map[string]interface{}{
			"type":        param.Type,
			"description": param.Description,
		}
		if param.Default != nil {
			prop["default"] = param.Default
		}
		properties[param.Name] = prop
		if param.Required {
			required = append(required, param.Name)
		}
	}

	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}

	if len(required) > 0 {
		schema["required"] = required
	}

	return schema
}

// NewDefaultRegistry creates the PokeAPI-backed service from config and
// registers every pokedex tool. A nil config means defaults.
func NewDefaultRegistry(cfg *config.Config) *Registry {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	client := pokeapi.NewClient(
		cfg.PokeAPI.BaseURL,
		cfg.PokeAPI.UserAgent,
		time.Duration(cfg.PokeAPI.TimeoutSeconds)*time.Second,
	)
	svc := pokedex.NewService(client,
		pokedex.WithRosterWorkers(cfg.Tools.RosterWorkers),
		pokedex.WithMaxRandomID(cfg.Tools.RandomMaxID),
	)
	return NewPokedexRegistry(svc, cfg.Tools.DefaultLimit)
}

// NewPokedexRegistry registers the six pokedex tools over svc.
func NewPokedexRegistry(svc *pokedex.Service, defaultLimit int) *Registry {
	if defaultLimit <= 0 {
		defaultLimit = config.DefaultConfig().Tools.DefaultLimit
	}

	registry := NewRegistry()
	tools := []Tool{
		NewPokemonInfoTool(svc),
		NewEvolutionChainTool(svc),
		NewSearchByTypeTool(svc, defaultLimit),
		NewRandomPokemonTool(svc),
		NewCompareStatsTool(svc),
		NewPokemonMovesTool(svc, defaultLimit),
	}

	for _, tool := range tools {
		_ = registry.Register(tool) // Ignore errors as we know these tool names won't conflict
	}

	return registry
}
