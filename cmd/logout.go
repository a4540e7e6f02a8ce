package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/edgeplane/edgeplane/internal/config"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored API token",
	Long: `Delete the stored credentials file. A token supplied through the
EDGEPLANE_API_TOKEN environment variable is not affected.`,
	Args: cobra.NoArgs,
	Run:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) {
	path, err := config.RemoveCredentials()
	if err != nil {
		fatal(err)
	}
	_, _ = color.New(color.FgGreen).Fprintf(os.Stderr, "✓ Removed %s\n", path)
	if os.Getenv(config.TokenEnvVar) != "" {
		fmt.Fprintf(os.Stderr, "Note: %s is still set in your environment.\n", config.TokenEnvVar)
	}
}
