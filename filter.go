// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathfilter

package pathfilter

import "regexp"

// Ignorer is the capability contract every filter satisfies.
type Ignorer interface {
	// Ignore reports whether path should be excluded. It is a total
	// function: absence of a matchable feature resolves to false,
	// never to an error.
	Ignore(path string) bool
}

// Kind identifies the variant carried by a Filter union value.
type Kind uint8

const (
	// KindUnknown is the kind of a zero-value Filter.
	KindUnknown Kind = iota
	// KindExtension marks a Filter carrying an ExtensionFilter.
	KindExtension
	// KindExtensions marks a Filter carrying an ExtensionsFilter.
	KindExtensions
	// KindRegex marks a Filter carrying a RegexFilter.
	KindRegex
)

// Wire names of the kind discriminant in persisted filters.
const (
	kindNameExtension  = "extension"
	kindNameExtensions = "extensions"
	kindNameRegex      = "regex"
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindExtension:
		return kindNameExtension
	case KindExtensions:
		return kindNameExtensions
	case KindRegex:
		return kindNameRegex
	default:
		return "unknown"
	}
}

// Filter is a closed union over the concrete filter variants. It carries
// exactly one payload; the zero value carries none and matches nothing.
//
// Heterogeneous filters stored together keep their own matching rules,
// and the union adds a kind tag for serialization.
type Filter struct {
	extension  *ExtensionFilter
	extensions *ExtensionsFilter
	regex      *RegexFilter
}

// NewExtension creates a union value for a single-extension filter.
func NewExtension(extension string) Filter {
	return NewExtensionFilter(extension).AsFilter()
}

// NewExtensions creates a union value for an extension-set filter.
func NewExtensions(extensions []string) Filter {
	return NewExtensionsFilter(extensions).AsFilter()
}

// NewRegex creates a union value for an already-compiled regular expression.
func NewRegex(re *regexp.Regexp) Filter {
	return NewRegexFilter(re).AsFilter()
}

// CompileRegex compiles pattern and creates a union value for it.
func CompileRegex(pattern string) (Filter, error) {
	f, err := CompileRegexFilter(pattern)
	if err != nil {
		return Filter{}, err
	}

	return f.AsFilter(), nil
}

// Kind returns the variant carried by the union value.
func (f Filter) Kind() Kind {
	switch {
	case f.extension != nil:
		return KindExtension
	case f.extensions != nil:
		return KindExtensions
	case f.regex != nil:
		return KindRegex
	default:
		return KindUnknown
	}
}

// Ignore dispatches to the contained variant's matching rule.
func (f Filter) Ignore(path string) bool {
	switch {
	case f.extension != nil:
		return f.extension.Ignore(path)
	case f.extensions != nil:
		return f.extensions.Ignore(path)
	case f.regex != nil:
		return f.regex.Ignore(path)
	default:
		return false
	}
}

// Filters is an ordered sequence of union values evaluated as a logical OR.
//
// Any []Filter-shaped collection converts to Filters without copying, so
// slices, sliced arrays and growable buffers of filters all share this
// matching loop.
type Filters []Filter

// Ignore reports whether at least one member ignores path. Evaluation
// short-circuits on the first match; an empty sequence matches nothing.
func (fs Filters) Ignore(path string) bool {
	for i := range fs {
		if fs[i].Ignore(path) {
			return true
		}
	}

	return false
}

// MergeFilters merges filter slices preserving input order.
func MergeFilters(sets ...[]Filter) Filters {
	total := 0
	for _, set := range sets {
		total += len(set)
	}

	out := make(Filters, 0, total)
	for _, set := range sets {
		out = append(out, set...)
	}

	return out
}
