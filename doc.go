// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package biceplab provides the data structures and tooling for the Bicep
// tutorial: an embedded library of lessons and example templates, a
// scaffolder that writes the library to disk, and helpers to fetch
// alternative tutorial libraries from remote sources.
//
// Auditing of the API versions referenced by the example templates lives in
// the apiversions package; deployment of examples goes through the deploy
// package's backend interface.
package biceplab
