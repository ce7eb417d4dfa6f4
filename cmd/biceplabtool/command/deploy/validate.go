// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package deploy

import (
	"os"

	"github.com/Azure/biceplab/deploy"
	"github.com/spf13/cobra"
)

var validateParametersFile string

// ValidateCmd validates a template against the resource group without deploying it.
var ValidateCmd = cobra.Command{
	Use:   "validate [flags] template",
	Short: "Validate a Bicep template without deploying it.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		b := backend(cmd)
		err := b.ValidateTemplate(cmd.Context(), deploy.TemplateRequest{
			ResourceGroup:  resourceGroup,
			TemplateFile:   args[0],
			ParametersFile: validateParametersFile,
		})
		if err != nil {
			cmd.PrintErrf("%s validation error: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
		cmd.Printf("Template %s is valid.\n", args[0])
	},
}

func init() {
	ValidateCmd.Flags().StringVarP(&validateParametersFile, "parameters", "p", "", "parameters file for the template")
}
