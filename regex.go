// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathfilter

package pathfilter

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// RegexFilter ignores paths whose string form matches a regular expression.
type RegexFilter struct {
	regex *regexp.Regexp
}

// CompileRegexFilter compiles pattern and creates a filter for it.
//
// Matching uses the engine's own semantics: unanchored "match anywhere"
// unless the pattern anchors itself, path separators are ordinary
// characters. The returned error wraps the engine's diagnostic when the
// pattern is invalid.
func CompileRegexFilter(pattern string) (*RegexFilter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile filter pattern: %w", err)
	}

	return &RegexFilter{regex: re}, nil
}

// NewRegexFilter creates a filter for an already-compiled regular expression.
func NewRegexFilter(re *regexp.Regexp) *RegexFilter {
	return &RegexFilter{regex: re}
}

// Ignore reports whether path matches the regular expression.
// Paths that are not valid UTF-8 never match.
func (f *RegexFilter) Ignore(path string) bool {
	if !utf8.ValidString(path) {
		return false
	}

	return f.regex.MatchString(path)
}

// Pattern returns the source pattern of the compiled regular expression.
func (f *RegexFilter) Pattern() string {
	return f.regex.String()
}

// AsFilter wraps the filter into the Filter union.
func (f *RegexFilter) AsFilter() Filter {
	return Filter{regex: f}
}
