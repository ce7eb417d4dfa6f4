// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package apiversions implements the apiversions command.
package apiversions

import (
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/biceplab/apiversions"
	"github.com/Azure/biceplab/internal/environment"
	"github.com/Azure/biceplab/registry"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultExamplesDir = "examples"

var (
	detailed     bool
	showLatest   bool
	subscription string
	parallelism  int
)

// ApiVersionsCmd audits the API versions referenced by Bicep templates.
// It is an advisory report: the command always exits successfully regardless
// of what it finds, so it never gates a calling process.
var ApiVersionsCmd = cobra.Command{
	Use:   "apiversions [flags] [dir]",
	Short: "Audit the API versions referenced by Bicep templates.",
	Long: `Scan a directory tree for Bicep templates, group every referenced API
version, and classify identifiers as old (1 to 2 years), very old (more than
2 years) or preview. With --latest, the Azure provider registry is queried
for the newest known API version per resource type and mismatches are flagged.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.FromContext(cmd.Context())

		dir := defaultExamplesDir
		if d := viper.GetString("examples_dir"); d != "" {
			dir = d
		}
		if len(args) == 1 {
			dir = args[0]
		}

		scanner := apiversions.NewScanner()
		report, err := scanner.Scan(os.DirFS(dir))
		if err != nil {
			logger.Warn("some files could not be read", "err", err)
		}
		logger.Info("scanned templates", "dir", dir, "references", report.Len())

		report.Render(cmd.OutOrStdout(), apiversions.RenderOptions{Detailed: detailed})

		if !showLatest || report.Len() == 0 {
			return
		}

		sub := subscription
		if sub == "" {
			sub = environment.SubscriptionID()
		}
		if sub == "" {
			logger.Warn("skipping latest version check: no subscription id, set --subscription or ARM_SUBSCRIPTION_ID")
			return
		}
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			logger.Warn("skipping latest version check: no Azure credential", "err", err)
			return
		}
		reg, err := registry.NewProviderRegistry(sub, cred, nil)
		if err != nil {
			logger.Warn("skipping latest version check", "err", err)
			return
		}
		results, err := apiversions.CompareLatest(cmd.Context(), reg, report, parallelism)
		if err != nil {
			logger.Warn("latest version check did not complete", "err", err)
			return
		}
		apiversions.RenderLatest(cmd.OutOrStdout(), results)
	},
}

func init() {
	ApiVersionsCmd.Flags().BoolVar(&detailed, "detailed", false, "list every contributing file and resource type per identifier")
	ApiVersionsCmd.Flags().BoolVar(&showLatest, "latest", false, "query the Azure provider registry for the newest API version per resource type")
	ApiVersionsCmd.Flags().StringVar(&subscription, "subscription", "", "Azure subscription id for the registry query")
	ApiVersionsCmd.Flags().IntVar(&parallelism, "parallelism", 0, "number of parallel registry requests (0 for the default)")
}
