// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package checks

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/Azure/biceplab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labFrom(t *testing.T, fsys fstest.MapFS) *biceplab.Lab {
	t.Helper()
	lab := biceplab.NewLab()
	require.NoError(t, lab.Init(context.Background(), fsys))
	return lab
}

func TestCheckExamplesHaveEntrypoint(t *testing.T) {
	t.Parallel()

	lab := labFrom(t, fstest.MapFS{
		"examples/good/main.bicep": &fstest.MapFile{Data: []byte("param x string\n")},
		"examples/bad/other.bicep": &fstest.MapFile{Data: []byte("param y string\n")},
	})

	err := CheckExamplesHaveEntrypoint(lab)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")
	assert.NotContains(t, err.Error(), "example good")
}

func TestCheckResourceDeclarationsAreWellFormed(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		lab := labFrom(t, fstest.MapFS{
			"examples/a/main.bicep": &fstest.MapFile{
				Data: []byte(`resource s 'Microsoft.Storage/storageAccounts@2023-05-01' = {}`),
			},
		})
		assert.NoError(t, CheckResourceDeclarationsAreWellFormed(lab))
	})

	t.Run("malformed version", func(t *testing.T) {
		t.Parallel()
		lab := labFrom(t, fstest.MapFS{
			"examples/a/main.bicep": &fstest.MapFile{
				Data: []byte(`resource s 'Microsoft.Storage/storageAccounts@latest' = {}`),
			},
		})
		err := CheckResourceDeclarationsAreWellFormed(lab)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "latest")
	})
}

func TestCheckParameterFilesAreValidJSON(t *testing.T) {
	t.Parallel()

	lab := labFrom(t, fstest.MapFS{
		"examples/a/main.bicep":           &fstest.MapFile{Data: []byte("param x string\n")},
		"examples/a/main.parameters.json": &fstest.MapFile{Data: []byte(`{"parameters": {}}`)},
		"examples/b/main.parameters.json": &fstest.MapFile{Data: []byte(`{not json`)},
	})

	err := CheckParameterFilesAreValidJSON(lab)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "b/main.parameters.json")
}

func TestCheckDocsCoverExamples(t *testing.T) {
	t.Parallel()

	t.Run("paired", func(t *testing.T) {
		t.Parallel()
		lab := labFrom(t, fstest.MapFS{
			"docs/a.md":             &fstest.MapFile{Data: []byte("# a\n")},
			"examples/a/main.bicep": &fstest.MapFile{Data: []byte("param x string\n")},
		})
		assert.NoError(t, CheckDocsCoverExamples(lab))
	})

	t.Run("unpaired", func(t *testing.T) {
		t.Parallel()
		lab := labFrom(t, fstest.MapFS{
			"docs/a.md":             &fstest.MapFile{Data: []byte("# a\n")},
			"examples/b/main.bicep": &fstest.MapFile{Data: []byte("param x string\n")},
		})
		err := CheckDocsCoverExamples(lab)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "b")
		assert.Contains(t, err.Error(), "a")
	})
}

func TestChecksRejectWrongType(t *testing.T) {
	t.Parallel()

	for _, check := range []func(any) error{
		CheckExamplesHaveEntrypoint,
		CheckResourceDeclarationsAreWellFormed,
		CheckParameterFilesAreValidJSON,
		CheckDocsCoverExamples,
	} {
		assert.Error(t, check("not a lab"))
	}
}

// The shipped embedded library must always pass its own checks.
func TestEmbeddedLibraryPassesAllChecks(t *testing.T) {
	t.Parallel()

	lab := biceplab.NewLab()
	require.NoError(t, lab.Init(context.Background(), biceplab.DefaultLibrary()))

	assert.NoError(t, CheckExamplesHaveEntrypoint(lab))
	assert.NoError(t, CheckResourceDeclarationsAreWellFormed(lab))
	assert.NoError(t, CheckParameterFilesAreValidJSON(lab))
	assert.NoError(t, CheckDocsCoverExamples(lab))
}
