// SPDX-License-Identifier: MIT
// Package: rskperm/shape
//
// parse.go — text syntax for partitions.
//
// Grammar: a comma-separated list of terms; a term is either a row length
// "L" or a repetition "L^C" meaning C rows of length L. Whitespace around
// numbers is ignored. Example: "50^50" is a 50×50 square, "4, 3^2, 1" is
// [4,3,3,1]. The parsed result must pass Validate.

package shape

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse decodes text into a validated Partition.
// Complexity: O(len(text) + rows).
func Parse(text string) (Partition, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("shape: Parse(%q): empty input: %w", text, ErrInvalidShape)
	}

	var out Partition
	total := 0
	for _, term := range strings.Split(text, ",") {
		length, count, err := parseTerm(term)
		if err != nil {
			return nil, fmt.Errorf("shape: Parse(%q): %w", text, err)
		}
		if length > (MaxCells-total)/count {
			return nil, fmt.Errorf("shape: Parse(%q): more than %d cells: %w",
				text, MaxCells, ErrInvalidShape)
		}
		total += length * count
		for i := 0; i < count; i++ {
			out = append(out, length)
		}
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("shape: Parse(%q): %w", text, err)
	}

	return out, nil
}

// parseTerm decodes "L" or "L^C".
func parseTerm(term string) (length, count int, err error) {
	term = strings.TrimSpace(term)
	lenText, countText, repeated := strings.Cut(term, "^")

	length, err = positiveInt(lenText)
	if err != nil {
		return 0, 0, fmt.Errorf("bad term %q: %w", term, err)
	}
	count = 1
	if repeated {
		if count, err = positiveInt(countText); err != nil {
			return 0, 0, fmt.Errorf("bad term %q: %w", term, err)
		}
	}

	return length, count, nil
}

func positiveInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return 0, ErrInvalidShape
	}
	return v, nil
}
