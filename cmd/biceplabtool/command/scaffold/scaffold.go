// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package scaffold implements the scaffold command.
package scaffold

import (
	"io/fs"
	"os"

	"github.com/Azure/biceplab"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	libraryUrl string
	force      bool
)

// ScaffoldCmd writes the tutorial library to a directory.
var ScaffoldCmd = cobra.Command{
	Use:   "scaffold [flags] dir",
	Short: "Write the tutorial library to a directory.",
	Long: `Write the tutorial lessons and example templates to the given directory.

By default the library embedded in the tool is used; --library fetches an
alternative library from any go-getter supported source instead.

Existing files with identical content are left untouched, so re-running the
command is a no-op. Files you have edited are preserved unless --force is set.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.FromContext(cmd.Context())

		src := biceplab.DefaultLibrary()
		if libraryUrl != "" {
			logger.Info("fetching tutorial library", "src", libraryUrl)
			fetched, err := biceplab.FetchLibraryByGetterString(cmd.Context(), libraryUrl, "scaffold")
			if err != nil {
				cmd.PrintErrf("%s scaffold error: %v\n", cmd.ErrPrefix(), err)
				os.Exit(1)
			}
			src = fetched
		}

		result, err := scaffoldTo(args[0], src)
		if err != nil {
			cmd.PrintErrf("%s scaffold error: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}

		logger.Info("scaffold complete",
			"dir", args[0],
			"written", len(result.Written),
			"unchanged", len(result.Unchanged),
		)
		for _, p := range result.Skipped {
			logger.Warn("local edits preserved, use --force to overwrite", "file", p)
		}
	},
}

func scaffoldTo(dir string, src fs.FS) (*biceplab.ScaffoldResult, error) {
	return biceplab.Scaffold(afero.NewOsFs(), dir, src, biceplab.ScaffoldOptions{Force: force})
}

func init() {
	ScaffoldCmd.Flags().StringVar(&libraryUrl, "library", "", "go-getter URL of an alternative tutorial library")
	ScaffoldCmd.Flags().BoolVar(&force, "force", false, "overwrite files whose content differs from the library")
}
