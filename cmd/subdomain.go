package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var subdomainCmd = &cobra.Command{
	Use:   "subdomain [name]",
	Short: "Configure your workers.dev subdomain",
	Long: `Print the account's workers.dev subdomain, or reserve one by passing a
name. The subdomain can only be set once.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSubdomain,
}

func init() {
	rootCmd.AddCommand(subdomainCmd)
}

func runSubdomain(cmd *cobra.Command, args []string) {
	target := resolveTarget(loadConfig())
	requireAccount(target)

	ctx := context.Background()
	client := newClient()

	if len(args) == 0 {
		name, err := client.Subdomain(ctx, target.AccountID)
		if err != nil {
			fatal(err)
		}
		if name == "" {
			fmt.Println("No subdomain registered. Run edgeplane subdomain <name> to reserve one.")
			return
		}
		fmt.Printf("%s.workers.dev\n", name)
		return
	}

	if err := client.RegisterSubdomain(ctx, target.AccountID, args[0]); err != nil {
		fatal(err)
	}
	_, _ = color.New(color.FgGreen).Fprintf(os.Stderr, "✓ Registered %s.workers.dev\n", args[0])
}
