// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathfilter

package pathfilter

import "sort"

// ExtensionFilter ignores paths whose extension equals one configured value.
type ExtensionFilter struct {
	extension string
}

// NewExtensionFilter creates a filter for one extension.
//
// Accepted extension forms:
//   - "rs"
//   - ".rs"
//
// A leading dot group is stripped; comparison is case-sensitive.
func NewExtensionFilter(extension string) *ExtensionFilter {
	return &ExtensionFilter{extension: trimExtension(extension)}
}

// Ignore reports whether path's extension equals the configured extension.
// Paths without an extension never match.
func (f *ExtensionFilter) Ignore(path string) bool {
	ext, ok := extensionOf(path)
	return ok && ext == f.extension
}

// Extension returns the stored normalized extension.
func (f *ExtensionFilter) Extension() string {
	return f.extension
}

// AsFilter wraps the filter into the Filter union.
func (f *ExtensionFilter) AsFilter() Filter {
	return Filter{extension: f}
}

// ExtensionsFilter ignores paths whose extension is a member of a configured set.
type ExtensionsFilter struct {
	extensions map[string]struct{}
}

// NewExtensionsFilter creates a filter for a list of extensions.
//
// Each value is normalized like in NewExtensionFilter; duplicates after
// normalization collapse to one entry.
func NewExtensionsFilter(extensions []string) *ExtensionsFilter {
	f := &ExtensionsFilter{
		extensions: make(map[string]struct{}, len(extensions)),
	}

	for _, ext := range extensions {
		f.extensions[trimExtension(ext)] = struct{}{}
	}

	return f
}

// WithExtension adds one normalized extension and returns the filter for
// chaining. Treat it as construction-time mutation: do not call it
// concurrently with Ignore on the same value.
func (f *ExtensionsFilter) WithExtension(extension string) *ExtensionsFilter {
	if f.extensions == nil {
		f.extensions = make(map[string]struct{}, 1)
	}

	f.extensions[trimExtension(extension)] = struct{}{}
	return f
}

// Ignore reports whether path's extension is in the configured set.
// Paths without an extension never match; an empty set matches nothing.
func (f *ExtensionsFilter) Ignore(path string) bool {
	ext, ok := extensionOf(path)
	if !ok {
		return false
	}

	_, member := f.extensions[ext]
	return member
}

// Extensions returns the stored extensions as a sorted copy.
func (f *ExtensionsFilter) Extensions() []string {
	out := make([]string, 0, len(f.extensions))
	for ext := range f.extensions {
		out = append(out, ext)
	}

	sort.Strings(out)
	return out
}

// AsFilter wraps the filter into the Filter union.
func (f *ExtensionsFilter) AsFilter() Filter {
	return Filter{extensions: f}
}
