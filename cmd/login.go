package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/edgeplane/edgeplane/internal/api"
	"github.com/edgeplane/edgeplane/internal/config"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate edgeplane with an API token",
	Long: `Store an API token for edgeplane to use. The token is read from stdin
and verified against the API before it is written to the user config
directory. EDGEPLANE_API_TOKEN in the environment always wins over the
stored token.`,
	Args: cobra.NoArgs,
	Run:  runLogin,
}

var loginNoVerify bool

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().BoolVar(&loginNoVerify, "no-verify", false, "Do not verify the token before storing it")
}

func runLogin(cmd *cobra.Command, args []string) {
	fmt.Fprint(os.Stderr, "Enter your API token: ")
	reader := bufio.NewReader(os.Stdin)
	token, err := reader.ReadString('\n')
	if err != nil && token == "" {
		fatal(fmt.Errorf("read token: %w", err))
	}
	token = strings.TrimSpace(token)
	if token == "" {
		fatal(fmt.Errorf("token cannot be empty"))
	}

	if !loginNoVerify {
		client := api.NewClient(os.Getenv("EDGEPLANE_API_URL"), token)
		user, err := client.Whoami(context.Background())
		if err != nil {
			fatal(fmt.Errorf("token verification failed: %w", err))
		}
		fmt.Fprintf(os.Stderr, "Token verified for %s.\n", user.Email)
	}

	path, err := config.SaveCredentials(&config.Credentials{APIToken: token})
	if err != nil {
		fatal(err)
	}
	_, _ = color.New(color.FgGreen).Fprintf(os.Stderr, "✓ Token written to %s\n", path)
}
