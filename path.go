// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathfilter

package pathfilter

import "strings"

// extensionOf returns the extension component of the final path segment:
// the substring after the last dot, excluding a dot in leading position.
// The second result reports whether the segment has an extension at all.
//
// Both "/" and "\" act as segment separators. No other normalization is
// performed; "archive.tar.gz" yields "gz" and ".gitignore" yields nothing.
func extensionOf(path string) (string, bool) {
	base := path
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}

	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return "", false
	}

	return base[i+1:], true
}

// trimExtension strips the leading dot group from a configured extension,
// so "rs", ".rs" and "..rs" all store as "rs". Case is preserved.
func trimExtension(ext string) string {
	return strings.TrimLeft(ext, ".")
}
