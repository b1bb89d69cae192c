package tools

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/hession/pokemate/internal/pokedex"
)

// lookup returns the first present argument among name and its aliases.
func lookup(args map[string]any, name string, aliases ...string) (any, bool) {
	for _, key := range append([]string{name}, aliases...) {
		if v, ok := args[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// requireString reads a non-blank string argument. Integral numbers are
// accepted and rendered in decimal, so {"name_or_id": 25} works.
func requireString(args map[string]any, name string, aliases ...string) (string, error) {
	v, ok := lookup(args, name, aliases...)
	if !ok {
		return "", pokedex.InvalidArgument("missing required parameter: %s", name)
	}

	var s string
	switch val := v.(type) {
	case string:
		s = val
	case float64:
		if val != math.Trunc(val) {
			return "", pokedex.InvalidArgument("parameter %s must be a string or an integer", name)
		}
		n, ok := floatToInt(val)
		if !ok {
			return "", pokedex.InvalidArgument("parameter %s out of range", name)
		}
		s = strconv.Itoa(n)
	case int:
		s = strconv.Itoa(val)
	case int64:
		s = strconv.FormatInt(val, 10)
	case json.Number:
		s = val.String()
	default:
		return "", pokedex.InvalidArgument("parameter %s must be a string", name)
	}

	if strings.TrimSpace(s) == "" {
		return "", pokedex.InvalidArgument("missing required parameter: %s", name)
	}
	return s, nil
}

// intArg reads an optional integer argument given as a JSON number or a
// decimal string. Absent arguments yield def.
func intArg(args map[string]any, name string, def int) (int, error) {
	v, ok := lookup(args, name)
	if !ok {
		return def, nil
	}

	switch val := v.(type) {
	case float64:
		if val != math.Trunc(val) {
			return 0, pokedex.InvalidArgument("parameter %s must be an integer", name)
		}
		n, ok := floatToInt(val)
		if !ok {
			return 0, pokedex.InvalidArgument("parameter %s out of range", name)
		}
		return n, nil
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return 0, pokedex.InvalidArgument("parameter %s must be an integer", name)
		}
		return int(n), nil
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return def, nil
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, pokedex.InvalidArgument("parameter %s must be an integer, got %q", name, val)
		}
		return n, nil
	default:
		return 0, pokedex.InvalidArgument("parameter %s must be an integer", name)
	}
}

// floatToInt converts an integral float that fits in int. The upper bound
// is exclusive because float64(math.MaxInt) rounds up to a power of two.
func floatToInt(val float64) (int, bool) {
	if val < float64(math.MinInt) || val >= -float64(math.MinInt) {
		return 0, false
	}
	return int(val), true
}
