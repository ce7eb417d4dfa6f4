// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package errcheck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckerError(t *testing.T) {
	t.Parallel()

	ce := NewCheckerError()
	assert.False(t, ce.HasErrors())

	ce.Add(nil)
	assert.False(t, ce.HasErrors())

	sentinel := errors.New("example is missing main.bicep")
	ce.Add(sentinel)
	ce.Add(errors.New("parameters file is not valid JSON"))
	assert.True(t, ce.HasErrors())
	assert.ErrorIs(t, ce, sentinel)
	assert.Contains(t, ce.Error(), "main.bicep")
}

func TestCheckerErrorPanicsWhenEmpty(t *testing.T) {
	t.Parallel()

	ce := NewCheckerError()
	assert.Panics(t, func() { _ = ce.Error() })
}
