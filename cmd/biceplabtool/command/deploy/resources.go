// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package deploy

import (
	"os"

	"github.com/spf13/cobra"
)

// ResourcesCmd lists the resources in the resource group.
var ResourcesCmd = cobra.Command{
	Use:   "resources [flags]",
	Short: "List the resources in the resource group.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		b := backend(cmd)
		resources, err := b.ListResources(cmd.Context(), resourceGroup)
		if err != nil {
			cmd.PrintErrf("%s deploy error: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
		if len(resources) == 0 {
			cmd.Printf("No resources in %s.\n", resourceGroup)
			return
		}
		for _, r := range resources {
			cmd.Printf("%s  %s  %s\n", r.Type, r.Name, r.Location)
		}
	},
}
