package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Manage secrets referenced in your script",
}

func init() {
	rootCmd.AddCommand(secretCmd)

	secretCmd.AddCommand(
		&cobra.Command{
			Use:   "put <name>",
			Short: "Create or replace a secret (value read from stdin)",
			Args:  cobra.ExactArgs(1),
			Run:   runSecretPut,
		},
		&cobra.Command{
			Use:   "delete <name>",
			Short: "Delete a secret",
			Args:  cobra.ExactArgs(1),
			Run:   runSecretDelete,
		},
		&cobra.Command{
			Use:   "list",
			Short: "List the secret names bound to the script",
			Args:  cobra.NoArgs,
			Run:   runSecretList,
		},
	)
}

func runSecretPut(cmd *cobra.Command, args []string) {
	target := resolveTarget(loadConfig())
	requireAccount(target)

	fmt.Fprintf(os.Stderr, "Enter the secret value: ")
	reader := bufio.NewReader(os.Stdin)
	value, err := reader.ReadString('\n')
	if err != nil && value == "" {
		fatal(fmt.Errorf("read secret value: %w", err))
	}
	value = strings.TrimRight(value, "\r\n")
	if value == "" {
		fatal(fmt.Errorf("secret value cannot be empty"))
	}

	err = newClient().PutSecret(context.Background(), target.AccountID, target.ScriptName, args[0], value)
	if err != nil {
		fatal(err)
	}
	_, _ = color.New(color.FgGreen).Fprintf(os.Stderr, "✓ Set secret %s on %s\n", args[0], target.ScriptName)
}

func runSecretDelete(cmd *cobra.Command, args []string) {
	target := resolveTarget(loadConfig())
	requireAccount(target)

	err := newClient().DeleteSecret(context.Background(), target.AccountID, target.ScriptName, args[0])
	if err != nil {
		fatal(err)
	}
	_, _ = color.New(color.FgGreen).Fprintf(os.Stderr, "✓ Deleted secret %s\n", args[0])
}

func runSecretList(cmd *cobra.Command, args []string) {
	target := resolveTarget(loadConfig())
	requireAccount(target)

	secrets, err := newClient().ListSecrets(context.Background(), target.AccountID, target.ScriptName)
	if err != nil {
		fatal(err)
	}
	for _, secret := range secrets {
		fmt.Println(secret.Name)
	}
}
