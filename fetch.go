// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package biceplab

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/Azure/biceplab/internal/environment"
	"github.com/hashicorp/go-getter/v2"
)

// FetchTutorialLibrary fetches a tagged release of the default tutorial
// library repository into a named directory under the biceplab working
// directory and returns it as an fs.FS.
func FetchTutorialLibrary(ctx context.Context, ref, dstDir string) (fs.FS, error) {
	q := url.Values{}
	q.Add("depth", "1")
	if ref != "" {
		q.Add("ref", ref)
	}
	src := environment.TutorialLibraryGitUrl() + "?" + q.Encode()
	return FetchLibraryByGetterString(ctx, src, dstDir)
}

// FetchLibraryByGetterString fetches a tutorial library from any go-getter
// supported source (git, http, s3, local paths) into a named directory under
// the biceplab working directory. The destination is recreated on each fetch.
func FetchLibraryByGetterString(ctx context.Context, getterString, dstDir string) (fs.FS, error) {
	dst := filepath.Join(environment.BicepLabDir(), dstDir)
	if err := os.RemoveAll(dst); err != nil {
		return nil, fmt.Errorf("removing destination directory %s: %w", dst, err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	client := getter.Client{}
	req := &getter.Request{
		Src: getterString,
		Dst: dst,
		Pwd: wd,
	}
	if _, err := client.Get(ctx, req); err != nil {
		return nil, fmt.Errorf("fetching library from %s: %w", getterString, err)
	}
	return os.DirFS(dst), nil
}
