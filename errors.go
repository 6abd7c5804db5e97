// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathfilter

package pathfilter

import "errors"

// Sentinel errors for pathfilter operations.
var (
	// ErrNoFilter indicates a Filter union value carrying no payload.
	ErrNoFilter = errors.New("filter has no payload")
	// ErrUnknownFilterKind indicates an unsupported kind discriminant in a persisted filter.
	ErrUnknownFilterKind = errors.New("unknown filter kind")
	// ErrInvalidFilterDocument indicates a persisted filter missing its variant payload.
	ErrInvalidFilterDocument = errors.New("invalid filter document")
)
