// Package tagging parses tag filter arguments.
package tagging

import (
	"fmt"
	"strings"
)

// ParseResult contains the parsed tag filter and any warnings.
type ParseResult struct {
	Tags     map[string]string
	Warnings []string
}

// ParseFlags parses --tag flag values into a tag filter.
// Returns a warning for each key given more than once (later wins).
//
// Tag format: "key=value". The value may be empty and may contain "=".
func ParseFlags(tags []string) (*ParseResult, error) {
	result := &ParseResult{
		Tags:     make(map[string]string, len(tags)),
		Warnings: make([]string, 0),
	}

	for _, tag := range tags {
		key, value, ok := strings.Cut(tag, "=")
		if !ok {
			return nil, fmt.Errorf("invalid tag format %q: expected key=value", tag)
		}
		if key == "" {
			return nil, fmt.Errorf("invalid tag format %q: key cannot be empty", tag)
		}

		if prev, exists := result.Tags[key]; exists && prev != value {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("tag %q: --tag %s=%s overrides --tag %s=%s", key, key, value, key, prev))
		}
		result.Tags[key] = value
	}

	return result, nil
}
