// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package checker runs named validation checks against a tutorial library.
package checker

import (
	"io"
	"os"

	"github.com/Azure/biceplab/tools/errcheck"
)

type Validator struct {
	checks []ValidatorCheck
	out    io.Writer
}

type ValidatorCheck struct {
	name string
	f    ValidateFunc
}

func NewValidatorCheck(name string, f ValidateFunc) ValidatorCheck {
	return ValidatorCheck{
		name: name,
		f:    f,
	}
}

type ValidateFunc func(any) error

func NewValidator(c ...ValidatorCheck) Validator {
	return Validator{
		checks: c,
		out:    os.Stdout,
	}
}

func (v Validator) AddChecks(c ...ValidatorCheck) Validator {
	v.checks = append(v.checks, c...)
	return v
}

// WithOutput returns a copy of the validator that writes progress to w.
func (v Validator) WithOutput(w io.Writer) Validator {
	v.out = w
	return v
}

func (v Validator) Validate(resource any) error {
	errs := errcheck.NewCheckerError()
	for _, c := range v.checks {
		io.WriteString(v.out, "==> Starting check: "+c.name+"\n") //nolint:errcheck
		if err := c.f(resource); err != nil {
			errs.Add(err)
		}
		io.WriteString(v.out, "==> Finished check: "+c.name+"\n") //nolint:errcheck
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}
