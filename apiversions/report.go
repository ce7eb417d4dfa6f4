// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package apiversions

import (
	"slices"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

// Report is the accumulated result of a single scan pass.
// It is built locally by Scanner.Scan and never shared across invocations.
type Report struct {
	records   []Record
	byVersion map[string][]Record
	byType    map[string][]Record
	now       time.Time
}

func newReport(now time.Time) *Report {
	return &Report{
		records:   make([]Record, 0),
		byVersion: make(map[string][]Record),
		byType:    make(map[string][]Record),
		now:       now,
	}
}

func (r *Report) add(rec Record) {
	r.records = append(r.records, rec)
	r.byVersion[rec.APIVersion] = append(r.byVersion[rec.APIVersion], rec)
	r.byType[rec.ResourceType] = append(r.byType[rec.ResourceType], rec)
}

// Len returns the total number of resource declarations matched.
func (r *Report) Len() int {
	return len(r.records)
}

// Records returns all records in the order they were found.
func (r *Report) Records() []Record {
	return slices.Clone(r.records)
}

// Versions returns the distinct API version identifiers in descending
// lexicographic order, which for date-formed identifiers approximates
// descending chronological order.
func (r *Report) Versions() []string {
	versions := make([]string, 0, len(r.byVersion))
	for v := range r.byVersion {
		versions = append(versions, v)
	}
	slices.Sort(versions)
	slices.Reverse(versions)
	return versions
}

// ResourceTypes returns the distinct resource types in ascending order.
func (r *Report) ResourceTypes() []string {
	types := make([]string, 0, len(r.byType))
	for t := range r.byType {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// RecordsForVersion returns the records that reference the given identifier.
func (r *Report) RecordsForVersion(version string) []Record {
	return slices.Clone(r.byVersion[version])
}

// RecordsForType returns the records that reference the given resource type.
func (r *Report) RecordsForType(resourceType string) []Record {
	return slices.Clone(r.byType[resourceType])
}

// Now returns the reference time the report was built with.
func (r *Report) Now() time.Time {
	return r.now
}

// Classification holds the freshness buckets for the distinct identifiers of
// a report. The sets overlap deliberately: Preview is an orthogonal axis, so
// a preview identifier whose date qualifies also appears in an age bucket.
type Classification struct {
	VeryOld mapset.Set[string] // date portion older than two years
	Old     mapset.Set[string] // date portion between one and two years old
	Preview mapset.Set[string] // identifier carries the pre-release marker
}

// Classify buckets every distinct identifier against the report's reference
// time. Identifiers without a parsable date prefix are excluded from the age
// buckets only.
func (r *Report) Classify() Classification {
	c := Classification{
		VeryOld: mapset.NewThreadUnsafeSet[string](),
		Old:     mapset.NewThreadUnsafeSet[string](),
		Preview: mapset.NewThreadUnsafeSet[string](),
	}
	oneYearAgo := r.now.AddDate(-1, 0, 0)
	twoYearsAgo := r.now.AddDate(-2, 0, 0)
	for v := range r.byVersion {
		if IsPreview(v) {
			c.Preview.Add(v)
		}
		d, ok := ParseIdentifierDate(v)
		if !ok {
			continue
		}
		switch {
		case d.Before(twoYearsAgo):
			c.VeryOld.Add(v)
		case d.Before(oneYearAgo):
			c.Old.Add(v)
		}
	}
	return c
}

// sortedDescending returns the set's members in descending order for display.
func sortedDescending(s mapset.Set[string]) []string {
	members := s.ToSlice()
	slices.SortFunc(members, func(a, b string) int {
		return strings.Compare(b, a)
	})
	return members
}
