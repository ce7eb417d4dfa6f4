// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package check implements the check command.
package check

import (
	"os"

	"github.com/Azure/biceplab"
	"github.com/Azure/biceplab/tools/checker"
	"github.com/Azure/biceplab/tools/checks"
	"github.com/spf13/cobra"
)

// CheckCmd validates a tutorial library directory. Unlike apiversions, check
// failures are hard errors and exit non-zero.
var CheckCmd = cobra.Command{
	Use:   "check [flags] dir",
	Short: "Check the validity of a tutorial library directory.",
	Long: `Check that a tutorial library directory is complete: every example has a
main.bicep, resource declarations carry date-formed API versions, parameter
files parse as JSON, and lessons and examples pair up.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		lab := biceplab.NewLab()
		if err := lab.Init(cmd.Context(), os.DirFS(args[0])); err != nil {
			cmd.PrintErrf("%s library load error: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}

		chk := checker.NewValidator(
			checker.NewValidatorCheck("examples have an entrypoint", checks.CheckExamplesHaveEntrypoint),
			checker.NewValidatorCheck("resource declarations are well formed", checks.CheckResourceDeclarationsAreWellFormed),
			checker.NewValidatorCheck("parameter files are valid JSON", checks.CheckParameterFilesAreValidJSON),
			checker.NewValidatorCheck("docs cover examples", checks.CheckDocsCoverExamples),
		).WithOutput(cmd.OutOrStdout())

		if err := chk.Validate(lab); err != nil {
			cmd.PrintErrf("%s library check error: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
	},
}
