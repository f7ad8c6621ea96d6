package config

import (
	"fmt"
	"slices"
	"strings"
)

var outputFormats = []string{"table", "json", "yaml"}

// OutputFormats lists the formats `config show` can render.
func OutputFormats() []string {
	return slices.Clone(outputFormats)
}

func ValidateOutputFormat(format string) error {
	if slices.Contains(outputFormats, format) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be one of: %s)", format, strings.Join(outputFormats, ", "))
}
