// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathfilter

package pathfilter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a persisted filter list from a YAML file.
//
// Each list element is a kind-discriminated filter document. An invalid
// persisted regex pattern fails the whole load with the compile error.
func LoadFile(path string) (Filters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read filters file: %w", err)
	}

	var filters Filters
	if err := yaml.Unmarshal(data, &filters); err != nil {
		return nil, fmt.Errorf("parse filters file %q: %w", path, err)
	}

	return filters, nil
}

// LoadFiles reads and merges filter lists from files in the given order.
//
// Returned filters preserve file order and filter order inside each file.
func LoadFiles(paths ...string) (Filters, error) {
	out := make(Filters, 0, len(paths)*4)
	for _, path := range paths {
		filters, err := LoadFile(path)
		if err != nil {
			return nil, err
		}

		out = append(out, filters...)
	}

	return out, nil
}

// WriteFile persists a filter list to a YAML file.
func WriteFile(path string, filters Filters) error {
	data, err := yaml.Marshal(filters)
	if err != nil {
		return fmt.Errorf("encode filters: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write filters file: %w", err)
	}

	return nil
}
