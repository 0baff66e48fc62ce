package session

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNumberPair parses operator input of the form "<number>, <number>".
// Plain whitespace separation is accepted when the comma is left out.
func ParseNumberPair(line string) (float64, float64, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, 0, fmt.Errorf("empty input, expected two numbers")
	}

	var parts []string
	if strings.Contains(line, ",") {
		parts = strings.Split(line, ",")
	} else {
		parts = strings.Fields(line)
	}
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected two numbers, got %d values", len(parts))
	}

	a, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid number %q", strings.TrimSpace(parts[0]))
	}
	b, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid number %q", strings.TrimSpace(parts[1]))
	}
	return a, b, nil
}

// ParseRGB parses three 8-bit color components separated by spaces or
// commas
func ParseRGB(line string) (r, g, b int, err error) {
	line = strings.ReplaceAll(strings.TrimSpace(line), ",", " ")
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected three color components, got %d values", len(parts))
	}

	vals := make([]int, 3)
	for i, p := range parts {
		v, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("invalid color component %q", p)
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], nil
}
