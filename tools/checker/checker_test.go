// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package checker

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorRunsAllChecks(t *testing.T) {
	t.Parallel()

	var ran []string
	mk := func(name string, err error) ValidatorCheck {
		return NewValidatorCheck(name, func(any) error {
			ran = append(ran, name)
			return err
		})
	}

	var out strings.Builder
	v := NewValidator(
		mk("first", nil),
		mk("second", errors.New("second failed")),
	).AddChecks(
		mk("third", errors.New("third failed")),
	).WithOutput(&out)

	err := v.Validate(struct{}{})
	require.Error(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, ran, "a failing check must not stop the rest")
	assert.Contains(t, err.Error(), "second failed")
	assert.Contains(t, err.Error(), "third failed")
	assert.Contains(t, out.String(), "==> Starting check: first")
	assert.Contains(t, out.String(), "==> Finished check: third")
}

func TestValidatorPasses(t *testing.T) {
	t.Parallel()

	v := NewValidator(
		NewValidatorCheck("noop", func(any) error { return nil }),
	).WithOutput(&strings.Builder{})
	assert.NoError(t, v.Validate(struct{}{}))
}
