// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package checks contains the validation checks for a tutorial library.
package checks

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/Azure/biceplab"
	"github.com/Azure/biceplab/apiversions"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/hashicorp/go-multierror"
)

// EntrypointFileName is the template every example must provide.
const EntrypointFileName = "main.bicep"

// CheckExamplesHaveEntrypoint verifies that every example ships a main.bicep.
func CheckExamplesHaveEntrypoint(labany any) error {
	lab, err := asLab("CheckExamplesHaveEntrypoint", labany)
	if err != nil {
		return err
	}
	var merr *multierror.Error
	for _, name := range lab.Examples() {
		ex, err := lab.Example(name)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		if _, ok := ex.Files[EntrypointFileName]; !ok {
			merr = multierror.Append(merr, fmt.Errorf("example %s has no %s", name, EntrypointFileName))
		}
	}
	return merr.ErrorOrNil()
}

// CheckResourceDeclarationsAreWellFormed verifies that every resource
// declaration in the examples' Bicep files carries a date-formed API version.
func CheckResourceDeclarationsAreWellFormed(labany any) error {
	lab, err := asLab("CheckResourceDeclarationsAreWellFormed", labany)
	if err != nil {
		return err
	}
	var merr *multierror.Error
	for _, name := range lab.Examples() {
		ex, err := lab.Example(name)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		for filePath, data := range ex.Files {
			if path.Ext(filePath) != apiversions.DefaultFileExtension {
				continue
			}
			for _, rec := range apiversions.Extract(path.Join(name, filePath), data) {
				if _, ok := apiversions.ParseIdentifierDate(rec.APIVersion); !ok {
					merr = multierror.Append(merr, fmt.Errorf(
						"%s: resource type %s has malformed API version %q",
						rec.SourceFile, rec.ResourceType, rec.APIVersion,
					))
				}
			}
		}
	}
	return merr.ErrorOrNil()
}

// CheckParameterFilesAreValidJSON verifies that every .json file in the
// examples parses as JSON.
func CheckParameterFilesAreValidJSON(labany any) error {
	lab, err := asLab("CheckParameterFilesAreValidJSON", labany)
	if err != nil {
		return err
	}
	var merr *multierror.Error
	for _, name := range lab.Examples() {
		ex, err := lab.Example(name)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		for filePath, data := range ex.Files {
			if path.Ext(filePath) != ".json" {
				continue
			}
			if !json.Valid(data) {
				merr = multierror.Append(merr, fmt.Errorf("%s/%s is not valid JSON", name, filePath))
			}
		}
	}
	return merr.ErrorOrNil()
}

// CheckDocsCoverExamples verifies that examples and lesson documents pair up:
// every example has a doc of the same name and vice versa.
func CheckDocsCoverExamples(labany any) error {
	lab, err := asLab("CheckDocsCoverExamples", labany)
	if err != nil {
		return err
	}

	examples := mapset.NewThreadUnsafeSet(lab.Examples()...)
	docs := mapset.NewThreadUnsafeSet[string]()
	for _, doc := range lab.Docs() {
		docs.Add(strings.TrimSuffix(doc, ".md"))
	}

	undocumented := examples.Difference(docs).ToSlice()
	orphaned := docs.Difference(examples).ToSlice()
	if len(undocumented) > 0 || len(orphaned) > 0 {
		return fmt.Errorf(
			"CheckDocsCoverExamples: found examples without docs %v and docs without examples %v",
			undocumented, orphaned,
		)
	}
	return nil
}

func asLab(check string, labany any) (*biceplab.Lab, error) {
	lab, ok := labany.(*biceplab.Lab)
	if !ok {
		return nil, fmt.Errorf("%s: expected *biceplab.Lab, got %T", check, labany)
	}
	return lab, nil
}
