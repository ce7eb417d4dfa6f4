// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package command implements the biceplabtool CLI.
package command

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiversionscmd "github.com/Azure/biceplab/cmd/biceplabtool/command/apiversions"
	checkcmd "github.com/Azure/biceplab/cmd/biceplabtool/command/check"
	deploycmd "github.com/Azure/biceplab/cmd/biceplabtool/command/deploy"
	scaffoldcmd "github.com/Azure/biceplab/cmd/biceplabtool/command/scaffold"
)

var version = "dev"

var (
	cfgFile  string
	logLevel string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "biceplabtool",
	Version: version,
	Short:   "A cli tool for working with the Bicep tutorial",
	Long: `A cli tool for working with the Bicep tutorial.

This tool can:

- Scaffold the tutorial library (lessons and example templates) to a directory.
- Audit the API versions referenced by the example templates.
- Deploy examples through the Azure CLI.
- Check the validity of a tutorial library directory.
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger := log.New(os.Stderr)
		if lvl, err := log.ParseLevel(logLevel); err == nil {
			logger.SetLevel(lvl)
		}
		cmd.SetContext(log.WithContext(cmd.Context(), logger))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.biceplab.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(&scaffoldcmd.ScaffoldCmd)
	rootCmd.AddCommand(&apiversionscmd.ApiVersionsCmd)
	rootCmd.AddCommand(&deploycmd.DeployBaseCmd)
	rootCmd.AddCommand(&checkcmd.CheckCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.SetConfigFile(filepath.Join(home, ".biceplab.yaml"))
			viper.SetConfigType("yaml")
		}
	}
	viper.SetEnvPrefix("BICEPLAB")
	viper.AutomaticEnv()
	viper.ReadInConfig() //nolint:errcheck
}
