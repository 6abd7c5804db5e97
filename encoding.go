// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathfilter

package pathfilter

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// extensionDocument is the persisted form of ExtensionFilter.
type extensionDocument struct {
	Extension string `json:"extension" yaml:"extension"`
}

// extensionsDocument is the persisted form of ExtensionsFilter.
type extensionsDocument struct {
	Extensions []string `json:"extensions" yaml:"extensions"`
}

// regexDocument is the persisted form of RegexFilter; only the source
// pattern is stored, decoding recompiles it.
type regexDocument struct {
	Pattern string `json:"pattern" yaml:"pattern"`
}

// filterDocument is the persisted form of the Filter union. Kind selects
// the variant; exactly one payload field is set. Payload fields are
// pointers so empty-string payloads survive omitempty.
type filterDocument struct {
	Kind       string   `json:"kind" yaml:"kind"`
	Extension  *string  `json:"extension,omitempty" yaml:"extension,omitempty"`
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	Pattern    *string  `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// MarshalJSON encodes the filter as {"extension": "..."}.
func (f *ExtensionFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(extensionDocument{Extension: f.extension})
}

// UnmarshalJSON decodes and re-normalizes a persisted extension filter.
func (f *ExtensionFilter) UnmarshalJSON(data []byte) error {
	var doc extensionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode extension filter: %w", err)
	}

	*f = *NewExtensionFilter(doc.Extension)
	return nil
}

// MarshalYAML encodes the filter as an "extension" mapping.
func (f *ExtensionFilter) MarshalYAML() (any, error) {
	return extensionDocument{Extension: f.extension}, nil
}

// UnmarshalYAML decodes and re-normalizes a persisted extension filter.
func (f *ExtensionFilter) UnmarshalYAML(value *yaml.Node) error {
	var doc extensionDocument
	if err := value.Decode(&doc); err != nil {
		return fmt.Errorf("decode extension filter: %w", err)
	}

	*f = *NewExtensionFilter(doc.Extension)
	return nil
}

// MarshalJSON encodes the filter as {"extensions": [...]} in sorted order.
func (f *ExtensionsFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(extensionsDocument{Extensions: f.Extensions()})
}

// UnmarshalJSON decodes and re-normalizes a persisted extensions filter.
func (f *ExtensionsFilter) UnmarshalJSON(data []byte) error {
	var doc extensionsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode extensions filter: %w", err)
	}

	*f = *NewExtensionsFilter(doc.Extensions)
	return nil
}

// MarshalYAML encodes the filter as an "extensions" mapping in sorted order.
func (f *ExtensionsFilter) MarshalYAML() (any, error) {
	return extensionsDocument{Extensions: f.Extensions()}, nil
}

// UnmarshalYAML decodes and re-normalizes a persisted extensions filter.
func (f *ExtensionsFilter) UnmarshalYAML(value *yaml.Node) error {
	var doc extensionsDocument
	if err := value.Decode(&doc); err != nil {
		return fmt.Errorf("decode extensions filter: %w", err)
	}

	*f = *NewExtensionsFilter(doc.Extensions)
	return nil
}

// MarshalJSON encodes the filter as {"pattern": "..."}.
func (f *RegexFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(regexDocument{Pattern: f.Pattern()})
}

// UnmarshalJSON recompiles a persisted regex filter; an invalid persisted
// pattern surfaces the same compile error as construction.
func (f *RegexFilter) UnmarshalJSON(data []byte) error {
	var doc regexDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode regex filter: %w", err)
	}

	compiled, err := CompileRegexFilter(doc.Pattern)
	if err != nil {
		return err
	}

	*f = *compiled
	return nil
}

// MarshalYAML encodes the filter as a "pattern" mapping.
func (f *RegexFilter) MarshalYAML() (any, error) {
	return regexDocument{Pattern: f.Pattern()}, nil
}

// UnmarshalYAML recompiles a persisted regex filter.
func (f *RegexFilter) UnmarshalYAML(value *yaml.Node) error {
	var doc regexDocument
	if err := value.Decode(&doc); err != nil {
		return fmt.Errorf("decode regex filter: %w", err)
	}

	compiled, err := CompileRegexFilter(doc.Pattern)
	if err != nil {
		return err
	}

	*f = *compiled
	return nil
}

// document converts the union into its persisted form.
func (f Filter) document() (*filterDocument, error) {
	switch {
	case f.extension != nil:
		ext := f.extension.extension
		return &filterDocument{Kind: kindNameExtension, Extension: &ext}, nil
	case f.extensions != nil:
		return &filterDocument{Kind: kindNameExtensions, Extensions: f.extensions.Extensions()}, nil
	case f.regex != nil:
		pattern := f.regex.Pattern()
		return &filterDocument{Kind: kindNameRegex, Pattern: &pattern}, nil
	default:
		return nil, ErrNoFilter
	}
}

// fromDocument rebuilds the union from its persisted form.
func (f *Filter) fromDocument(doc *filterDocument) error {
	switch doc.Kind {
	case kindNameExtension:
		if doc.Extension == nil {
			return fmt.Errorf("%w: missing extension", ErrInvalidFilterDocument)
		}

		*f = NewExtension(*doc.Extension)
	case kindNameExtensions:
		*f = NewExtensions(doc.Extensions)
	case kindNameRegex:
		if doc.Pattern == nil {
			return fmt.Errorf("%w: missing pattern", ErrInvalidFilterDocument)
		}

		compiled, err := CompileRegex(*doc.Pattern)
		if err != nil {
			return err
		}

		*f = compiled
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFilterKind, doc.Kind)
	}

	return nil
}

// MarshalJSON encodes the union with its kind discriminant.
func (f Filter) MarshalJSON() ([]byte, error) {
	doc, err := f.document()
	if err != nil {
		return nil, err
	}

	return json.Marshal(doc)
}

// UnmarshalJSON decodes a kind-discriminated filter.
func (f *Filter) UnmarshalJSON(data []byte) error {
	var doc filterDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode filter: %w", err)
	}

	return f.fromDocument(&doc)
}

// MarshalYAML encodes the union with its kind discriminant.
func (f Filter) MarshalYAML() (any, error) {
	return f.document()
}

// UnmarshalYAML decodes a kind-discriminated filter.
func (f *Filter) UnmarshalYAML(value *yaml.Node) error {
	var doc filterDocument
	if err := value.Decode(&doc); err != nil {
		return fmt.Errorf("decode filter: %w", err)
	}

	return f.fromDocument(&doc)
}
