// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package apiversions scans Bicep templates for the API versions referenced by
// their resource declarations and classifies them by age and preview status.
//
// The grammar assumption is deliberately narrow: a resource declaration is
// recognised only in its single-quoted, single-line form
//
//	resource <symbolicName> '<namespace>.<kind>[/<path>]@<apiVersion>'
//
// Declarations split across lines are not matched. This is a known limitation,
// kept so that scanning stays a plain text operation and does not grow into a
// Bicep parser.
package apiversions

import (
	"io/fs"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
)

const (
	// DefaultFileExtension is the file extension of Bicep templates.
	DefaultFileExtension = ".bicep"

	// PreviewMarker is the suffix fragment that marks a pre-release API version.
	PreviewMarker = "-preview"

	// identifierDateLayout is the date portion of an API version identifier.
	identifierDateLayout = "2006-01-02"
)

var resourceDeclarationRegex = regexp.MustCompile(
	`(?m)\bresource\s+[A-Za-z_][A-Za-z0-9_]*\s+'(?P<type>[^'@]+)@(?P<version>[^']+)'`,
)

// Record is a single (resourceType, apiVersion) reference found in a template.
type Record struct {
	ResourceType string
	APIVersion   string
	SourceFile   string
}

// Scanner enumerates template files and extracts version records.
// The zero value is not usable, create one with NewScanner.
type Scanner struct {
	// Extension selects the files to scan, defaults to ".bicep".
	Extension string
	// Now supplies the reference time for age classification. Overridable for tests.
	Now func() time.Time
}

func NewScanner() *Scanner {
	return &Scanner{
		Extension: DefaultFileExtension,
		Now:       time.Now,
	}
}

// Scan walks fsys recursively and builds a report from every matching file.
// A missing or empty tree yields an empty report and a nil error. Individual
// files that cannot be read are collected into the returned error, but the
// scan continues and the report remains valid; callers are expected to treat
// that error as informational.
func (s *Scanner) Scan(fsys fs.FS) (*Report, error) {
	report := newReport(s.Now())
	var merr *multierror.Error

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// A root that does not exist is "zero files found", not a failure.
			if p == "." {
				return fs.SkipAll
			}
			merr = multierror.Append(merr, err)
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(path.Base(p), s.Extension) {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			merr = multierror.Append(merr, err)
			return nil
		}
		for _, rec := range Extract(p, data) {
			report.add(rec)
		}
		return nil
	})
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	return report, merr.ErrorOrNil()
}

// Extract returns the version records for every resource declaration in data.
// sourceFile is recorded verbatim on each record.
func Extract(sourceFile string, data []byte) []Record {
	matches := resourceDeclarationRegex.FindAllSubmatch(data, -1)
	if len(matches) == 0 {
		return nil
	}
	typeIdx := resourceDeclarationRegex.SubexpIndex("type")
	versionIdx := resourceDeclarationRegex.SubexpIndex("version")
	records := make([]Record, 0, len(matches))
	for _, m := range matches {
		records = append(records, Record{
			ResourceType: string(m[typeIdx]),
			APIVersion:   string(m[versionIdx]),
			SourceFile:   sourceFile,
		})
	}
	return records
}

// ParseIdentifierDate extracts the leading YYYY-MM-DD date from an API version
// identifier. The second return value is false when the identifier does not
// begin with a well-formed date.
func ParseIdentifierDate(identifier string) (time.Time, bool) {
	if len(identifier) < len(identifierDateLayout) {
		return time.Time{}, false
	}
	d, err := time.Parse(identifierDateLayout, identifier[:len(identifierDateLayout)])
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// IsPreview reports whether the identifier carries the pre-release marker.
func IsPreview(identifier string) bool {
	return strings.Contains(identifier, PreviewMarker)
}
