// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package deploy implements the deploy command group.
package deploy

import (
	"os"

	"github.com/Azure/biceplab/deploy"
	"github.com/spf13/cobra"
)

var (
	resourceGroup  string
	location       string
	deploymentName string
	parametersFile string
)

// DeployBaseCmd is the parent of the deployment subcommands.
var DeployBaseCmd = cobra.Command{
	Use:   "deploy",
	Short: "Deploy tutorial examples through the Azure CLI.",
	Long: `Deploy tutorial examples through the Azure CLI.

The subcommands wrap 'az deployment group' operations: validate a template,
submit a deployment (creating the resource group first), and list the
resources in a resource group. All operations require a logged-in Azure CLI.`,
}

// backend constructs the Azure CLI backend, exiting with a corrective
// instruction when the CLI is not installed.
func backend(cmd *cobra.Command) deploy.Backend {
	b, err := deploy.NewAzCLI()
	if err != nil {
		cmd.PrintErrf("%s deploy error: %v\n", cmd.ErrPrefix(), err)
		os.Exit(1)
	}
	return b
}

func init() {
	DeployBaseCmd.PersistentFlags().StringVarP(&resourceGroup, "resource-group", "g", "", "name of the resource group")
	DeployBaseCmd.MarkPersistentFlagRequired("resource-group") //nolint:errcheck

	DeployBaseCmd.AddCommand(&SubmitCmd)
	DeployBaseCmd.AddCommand(&ValidateCmd)
	DeployBaseCmd.AddCommand(&ResourcesCmd)
}
