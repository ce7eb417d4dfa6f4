// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package errcheck provides an error type that aggregates the results of multiple checks.
package errcheck

import "fmt"

var _ error = (*CheckerError)(nil)

// CheckerError collects the errors returned by individual checks.
type CheckerError struct {
	errs []error
}

func NewCheckerError() *CheckerError {
	return &CheckerError{
		errs: make([]error, 0),
	}
}

// Add appends an error to the collection. Nil errors are ignored.
func (v *CheckerError) Add(err error) {
	if err == nil {
		return
	}
	v.errs = append(v.errs, err)
}

func (v *CheckerError) HasErrors() bool {
	return len(v.errs) > 0
}

func (v *CheckerError) Error() string {
	if len(v.errs) == 0 {
		panic("no errors")
	}
	return fmt.Sprintf("the following errors occurred: %v", v.errs)
}

// Unwrap exposes the collected errors to errors.Is/errors.As.
func (v *CheckerError) Unwrap() []error {
	return v.errs
}
