// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package deploy

import (
	"fmt"
	"os"

	"github.com/Azure/biceplab/deploy"
	"github.com/Azure/biceplab/internal/environment"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// SubmitCmd creates the resource group and deploys a template into it.
var SubmitCmd = cobra.Command{
	Use:   "submit [flags] template",
	Short: "Create the resource group and deploy a Bicep template into it.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.FromContext(cmd.Context())
		b := backend(cmd)

		loc := location
		if loc == "" {
			loc = environment.Location()
		}

		logger.Info("ensuring resource group", "name", resourceGroup, "location", loc)
		if err := b.CreateResourceGroup(cmd.Context(), resourceGroup, loc); err != nil {
			cmd.PrintErrf("%s deploy error: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}

		logger.Info("submitting deployment", "template", args[0])
		result, err := b.DeployTemplate(cmd.Context(), deploy.TemplateRequest{
			ResourceGroup:  resourceGroup,
			Name:           deploymentName,
			TemplateFile:   args[0],
			ParametersFile: parametersFile,
		})
		if err != nil {
			cmd.PrintErrf("%s deploy error: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}

		cmd.Printf("Deployment %s: %s\n", result.Name, result.ProvisioningState)
		for k, v := range result.Outputs {
			cmd.Printf("  output %s = %v\n", k, v)
		}
		if result.ProvisioningState != "Succeeded" {
			fmt.Fprintln(cmd.ErrOrStderr(), "deployment did not succeed")
			os.Exit(1)
		}
	},
}

func init() {
	SubmitCmd.Flags().StringVarP(&location, "location", "l", "", "Azure region for the resource group (default from BICEPLAB_LOCATION)")
	SubmitCmd.Flags().StringVarP(&deploymentName, "name", "n", "", "deployment name (generated when empty)")
	SubmitCmd.Flags().StringVarP(&parametersFile, "parameters", "p", "", "parameters file for the template")
}
