// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathfilter

/*
Package pathfilter decides whether filesystem paths should be ignored.

The package provides a small set of composable filters behind a common
`Ignorer` contract. A filter answers one question for one path: should
this path be excluded from whatever downstream process consults it.

Basic flow:
  - build concrete filters (`NewExtensionFilter`, `NewExtensionsFilter`, `CompileRegexFilter`)
  - or build union values directly (`NewExtension`, `NewExtensions`, `CompileRegex`)
  - combine them into `Filters`
  - ask for decision (`Ignore`)

Filter values are immutable after construction and safe for concurrent
matching. Matching never fails: a path without an extension, or a path
that is not valid UTF-8 when regex matching is requested, simply does
not match. Only regex compilation and decoding of persisted filters can
return errors.

Extension comparison is case-sensitive. Callers on case-insensitive
filesystems that want case-insensitive behavior must lower-case both
their configured extensions and queried paths themselves.

Filters and filter lists serialize to JSON and YAML with a `kind`
discriminant field; use `LoadFile` / `WriteFile` for persisted filter
sets. Regex filters persist their source pattern and recompile on load.
*/
package pathfilter
