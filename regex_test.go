// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathfilter

package pathfilter

import (
	"regexp"
	"regexp/syntax"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileRegexFilter(t *testing.T) {
	t.Parallel()

	filter, err := CompileRegexFilter(`^src/lib\.rs$`)
	require.NoError(t, err)

	assert.True(t, filter.Ignore("src/lib.rs"))
	assert.False(t, filter.Ignore("src/main.rs"))
	assert.False(t, filter.Ignore("src/Program.cs"))
}

func TestCompileRegexFilterInvalidPattern(t *testing.T) {
	t.Parallel()

	filter, err := CompileRegexFilter("bad[regex")
	require.Error(t, err)
	assert.Nil(t, filter)

	// The engine's diagnostic stays reachable through the wrap.
	var syntaxErr *syntax.Error
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestRegexFilterUnanchored(t *testing.T) {
	t.Parallel()

	filter, err := CompileRegexFilter(`\.rs$`)
	require.NoError(t, err)

	assert.True(t, filter.Ignore("src/lib.rs"))
	assert.True(t, filter.Ignore("deep/nested/main.rs"))
	assert.False(t, filter.Ignore("src/lib.rs.bak"))
}

func TestRegexFilterSeparatorsAreOrdinary(t *testing.T) {
	t.Parallel()

	filter, err := CompileRegexFilter("vendor/")
	require.NoError(t, err)

	assert.True(t, filter.Ignore("vendor/pkg/mod.go"))
	assert.True(t, filter.Ignore("third_party/vendor/x"))
	assert.False(t, filter.Ignore("vendored.go"))
}

func TestRegexFilterMatchesEngine(t *testing.T) {
	t.Parallel()

	re := regexp.MustCompile(`(^|/)build($|/)`)
	filter := NewRegexFilter(re)

	for _, path := range []string{"build", "build/out.o", "src/build/x", "builder/x", "a.rebuild"} {
		assert.Equal(t, re.MatchString(path), filter.Ignore(path), "path %q", path)
	}
}

func TestRegexFilterNonUTF8Path(t *testing.T) {
	t.Parallel()

	filter, err := CompileRegexFilter(".*")
	require.NoError(t, err)

	assert.True(t, filter.Ignore("anything"))
	assert.False(t, filter.Ignore("src/\xff\xfe.rs"))
	assert.False(t, filter.Ignore(string([]byte{0x80})))
}

func TestRegexFilterPattern(t *testing.T) {
	t.Parallel()

	filter, err := CompileRegexFilter(`^src/lib\.rs$`)
	require.NoError(t, err)

	assert.Equal(t, `^src/lib\.rs$`, filter.Pattern())
	assert.Equal(t, "abc", NewRegexFilter(regexp.MustCompile("abc")).Pattern())
}
