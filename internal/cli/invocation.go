package cli

import (
	"fmt"
	"strings"
)

// ParseInvocation splits a "tool key=value ..." line into the tool name
// and its arguments.
func ParseInvocation(line string) (string, map[string]any, error) {
	fields, err := splitFields(line)
	if err != nil {
		return "", nil, err
	}
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("empty command")
	}

	args, err := ParseArgs(fields[1:])
	if err != nil {
		return "", nil, err
	}
	return fields[0], args, nil
}

// ParseArgs turns key=value pairs into tool arguments. Values stay
// strings; the tools accept decimal strings for numeric parameters.
func ParseArgs(pairs []string) (map[string]any, error) {
	args := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid argument %q, expected key=value", pair)
		}
		if _, dup := args[key]; dup {
			return nil, fmt.Errorf("duplicate argument %q", key)
		}
		args[key] = value
	}
	return args, nil
}

// splitFields splits on whitespace, keeping double-quoted runs together.
func splitFields(line string) ([]string, error) {
	var (
		fields  []string
		current strings.Builder
		quoted  bool
		started bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			started = true
		case !quoted && (r == ' ' || r == '\t'):
			if started {
				fields = append(fields, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}

	if quoted {
		return nil, fmt.Errorf("unterminated quote in %q", line)
	}
	if started {
		fields = append(fields, current.String())
	}
	return fields, nil
}
