// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package environment contains the types and methods for fetching configuration from the local environment.
package environment

import "os"

const (
	fetchDefaultBaseDir    = ".biceplab"                         // fetchDefaultBaseDir is the default base directory for fetching tutorial libraries.
	fetchDefaultBaseDirEnv = "BICEPLAB_DIR"                      // fetchDefaultBaseDirEnv is the environment variable to override the default base directory.
	tutorialLibraryGitUrl  = "github.com/Azure/biceplab-library" // tutorialLibraryGitUrl is the URL of the default tutorial library.
	tutorialLibraryUrlEnv  = "BICEPLAB_LIBRARY_GIT_URL"          // tutorialLibraryUrlEnv is the environment variable to override the default git URL.
	defaultLocation        = "westeurope"                        // defaultLocation is the fallback Azure region for deployments.
	defaultLocationEnv     = "BICEPLAB_LOCATION"                 // defaultLocationEnv is the environment variable to override the default location.
)

// BicepLabDir contents of the `BICEPLAB_DIR` environment variable, or the default which is `.biceplab`.
func BicepLabDir() string {
	dir := fetchDefaultBaseDir
	if d := os.Getenv(fetchDefaultBaseDirEnv); d != "" {
		dir = d
	}
	return dir
}

// TutorialLibraryGitUrl contents of the `BICEPLAB_LIBRARY_GIT_URL` environment variable, or the default which is `github.com/Azure/biceplab-library`.
func TutorialLibraryGitUrl() string {
	url := tutorialLibraryGitUrl
	if u := os.Getenv(tutorialLibraryUrlEnv); u != "" {
		url = u
	}
	return url
}

// Location contents of the `BICEPLAB_LOCATION` environment variable, or the default which is `westeurope`.
func Location() string {
	loc := defaultLocation
	if l := os.Getenv(defaultLocationEnv); l != "" {
		loc = l
	}
	return loc
}

// SubscriptionID returns the Azure subscription id from the conventional environment
// variables, or an empty string when none is set.
func SubscriptionID() string {
	for _, v := range []string{"ARM_SUBSCRIPTION_ID", "AZURE_SUBSCRIPTION_ID"} {
		if s := os.Getenv(v); s != "" {
			return s
		}
	}
	return ""
}
