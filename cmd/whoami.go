package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Retrieve your user info and test your auth config",
	Args:  cobra.NoArgs,
	Run:   runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) {
	user, err := newClient().Whoami(context.Background())
	if err != nil {
		fatal(err)
	}
	fmt.Printf("You are logged in as %s (account user %s).\n", user.Email, user.ID)
}
