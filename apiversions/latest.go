// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package apiversions

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

const defaultParallelism = 10 // default number of parallel requests to make to the provider registry

// Resolver looks up the newest known API version for a resource type.
type Resolver interface {
	LatestAPIVersion(ctx context.Context, namespace, resourceType string) (string, error)
}

// LatestResult is the outcome of one resource type's registry lookup.
type LatestResult struct {
	ResourceType string
	InUse        []string // identifiers referenced by the scanned templates
	Latest       string
	UpToDate     bool
	Err          error // lookup failure, informational only
}

// CompareLatest resolves the newest API version for every distinct resource
// type in the report and flags the types whose referenced versions lag behind.
// Resource types without a namespace/kind separator are skipped. Lookup
// failures are recorded on the result rather than aborting the comparison.
func CompareLatest(ctx context.Context, resolver Resolver, report *Report, parallelism int) ([]LatestResult, error) {
	if parallelism <= 0 {
		parallelism = defaultParallelism
	}

	types := make([]string, 0)
	for _, t := range report.ResourceTypes() {
		if !strings.Contains(t, "/") {
			continue
		}
		types = append(types, t)
	}

	results := make([]LatestResult, len(types))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, t := range types {
		g.Go(func() error {
			namespace, resourceType, _ := strings.Cut(t, "/")
			res := LatestResult{
				ResourceType: t,
				InUse:        distinctVersions(report.RecordsForType(t)),
			}
			latest, err := resolver.LatestAPIVersion(gctx, namespace, resourceType)
			if err != nil {
				res.Err = err
			} else {
				res.Latest = latest
				res.UpToDate = allEqual(res.InUse, latest)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func distinctVersions(recs []Record) []string {
	seen := make(map[string]struct{}, len(recs))
	versions := make([]string, 0, len(recs))
	for _, rec := range recs {
		if _, ok := seen[rec.APIVersion]; ok {
			continue
		}
		seen[rec.APIVersion] = struct{}{}
		versions = append(versions, rec.APIVersion)
	}
	return versions
}

func allEqual(versions []string, want string) bool {
	for _, v := range versions {
		if v != want {
			return false
		}
	}
	return true
}
