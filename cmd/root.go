package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/edgeplane/edgeplane/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "edgeplane",
	Short: "Deploy and manage serverless scripts on the edge",
	Long:  `Edgeplane is a tool for building, previewing, and deploying serverless scripts to the edge platform.`,
}

var (
	configPath  string
	environment string
	verbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultFileName, "Path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&environment, "env", "e", "", "Environment to perform a command on")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Toggle verbose output (when applicable)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
