// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package biceplab

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaffold(t *testing.T) {
	t.Parallel()

	dest := afero.NewMemMapFs()
	result, err := Scaffold(dest, "tutorial", testLibrary(), ScaffoldOptions{})
	require.NoError(t, err)
	assert.Len(t, result.Written, 6)
	assert.Empty(t, result.Unchanged)
	assert.Empty(t, result.Skipped)

	data, err := afero.ReadFile(dest, "tutorial/examples/01-parameters/main.bicep")
	require.NoError(t, err)
	assert.Equal(t, []byte("param x string\n"), data)
}

func TestScaffoldIsIdempotent(t *testing.T) {
	t.Parallel()

	dest := afero.NewMemMapFs()
	first, err := Scaffold(dest, "tutorial", testLibrary(), ScaffoldOptions{})
	require.NoError(t, err)
	require.Len(t, first.Written, 6)

	second, err := Scaffold(dest, "tutorial", testLibrary(), ScaffoldOptions{})
	require.NoError(t, err)
	assert.Empty(t, second.Written, "identical content must not be rewritten")
	assert.Len(t, second.Unchanged, 6)
	assert.Empty(t, second.Skipped)
}

func TestScaffoldSkipsModifiedFilesWithoutForce(t *testing.T) {
	t.Parallel()

	dest := afero.NewMemMapFs()
	_, err := Scaffold(dest, "tutorial", testLibrary(), ScaffoldOptions{})
	require.NoError(t, err)

	edited := []byte("param x string = 'edited'\n")
	require.NoError(t, afero.WriteFile(dest, "tutorial/examples/01-parameters/main.bicep", edited, 0o644))

	result, err := Scaffold(dest, "tutorial", testLibrary(), ScaffoldOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"examples/01-parameters/main.bicep"}, result.Skipped)

	data, err := afero.ReadFile(dest, "tutorial/examples/01-parameters/main.bicep")
	require.NoError(t, err)
	assert.Equal(t, edited, data, "user edits are preserved without --force")
}

func TestScaffoldForceOverwrites(t *testing.T) {
	t.Parallel()

	dest := afero.NewMemMapFs()
	_, err := Scaffold(dest, "tutorial", testLibrary(), ScaffoldOptions{})
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(dest, "tutorial/README.md", []byte("edited"), 0o644))

	result, err := Scaffold(dest, "tutorial", testLibrary(), ScaffoldOptions{Force: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md"}, result.Written)

	data, err := afero.ReadFile(dest, "tutorial/README.md")
	require.NoError(t, err)
	assert.Equal(t, []byte("# library\n"), data)
}

func TestScaffoldEmbeddedLibrary(t *testing.T) {
	t.Parallel()

	dest := afero.NewMemMapFs()
	result, err := Scaffold(dest, ".", DefaultLibrary(), ScaffoldOptions{})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Written)

	exists, err := afero.Exists(dest, "examples/01-parameters/main.bicep")
	require.NoError(t, err)
	assert.True(t, exists)
}
