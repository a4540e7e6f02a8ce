package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/edgeplane/edgeplane/internal/kv"
)

var kvCmd = &cobra.Command{
	Use:   "kv",
	Short: "Interact with your KV namespaces and key-value pairs",
}

var kvNamespaceCmd = &cobra.Command{
	Use:   "namespace",
	Short: "Manage KV namespaces",
}

var kvKeyCmd = &cobra.Command{
	Use:   "key",
	Short: "Individually manage KV key-value pairs",
}

var kvBulkCmd = &cobra.Command{
	Use:   "bulk",
	Short: "Interact with multiple KV key-value pairs at once",
}

var (
	kvNamespaceID string
	kvKeyTTL      int64
	kvKeyPrefix   string
)

func init() {
	rootCmd.AddCommand(kvCmd)
	kvCmd.AddCommand(kvNamespaceCmd, kvKeyCmd, kvBulkCmd)

	kvNamespaceCmd.AddCommand(
		&cobra.Command{
			Use:   "create <title>",
			Short: "Create a new namespace",
			Args:  cobra.ExactArgs(1),
			Run:   runKVNamespaceCreate,
		},
		&cobra.Command{
			Use:   "delete <namespace-id>",
			Short: "Delete a namespace",
			Args:  cobra.ExactArgs(1),
			Run:   runKVNamespaceDelete,
		},
		&cobra.Command{
			Use:   "list",
			Short: "List all namespaces on your account",
			Args:  cobra.NoArgs,
			Run:   runKVNamespaceList,
		},
	)

	put := &cobra.Command{
		Use:   "put <key> <value>",
		Short: "Write a single key-value pair",
		Args:  cobra.ExactArgs(2),
		Run:   runKVKeyPut,
	}
	put.Flags().Int64Var(&kvKeyTTL, "ttl", 0, "Seconds until the key expires (minimum 60)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List the keys in a namespace",
		Args:  cobra.NoArgs,
		Run:   runKVKeyList,
	}
	list.Flags().StringVar(&kvKeyPrefix, "prefix", "", "Only list keys starting with prefix")

	kvKeyCmd.AddCommand(
		put,
		&cobra.Command{
			Use:   "get <key>",
			Short: "Read a single value",
			Args:  cobra.ExactArgs(1),
			Run:   runKVKeyGet,
		},
		&cobra.Command{
			Use:   "delete <key>",
			Short: "Delete a single key",
			Args:  cobra.ExactArgs(1),
			Run:   runKVKeyDelete,
		},
		list,
	)

	kvBulkCmd.AddCommand(
		&cobra.Command{
			Use:   "put <file.json>",
			Short: "Upload key-value pairs from a JSON file",
			Long: `Upload many key-value pairs in one request. The file must be a JSON
array of {"key": ..., "value": ...} objects and is validated before
anything is sent.`,
			Args: cobra.ExactArgs(1),
			Run:  runKVBulkPut,
		},
		&cobra.Command{
			Use:   "delete <file.json>",
			Short: "Delete the keys listed in a JSON file",
			Args:  cobra.ExactArgs(1),
			Run:   runKVBulkDelete,
		},
	)

	for _, sub := range []*cobra.Command{kvKeyCmd, kvBulkCmd} {
		sub.PersistentFlags().StringVar(&kvNamespaceID, "namespace-id", "", "The ID of the namespace to operate on")
	}
}

func requireNamespace() string {
	if kvNamespaceID == "" {
		fatal(fmt.Errorf("--namespace-id is required"))
	}
	return kvNamespaceID
}

func runKVNamespaceCreate(cmd *cobra.Command, args []string) {
	target := resolveTarget(loadConfig())
	requireAccount(target)

	ns, err := newClient().CreateNamespace(context.Background(), target.AccountID, args[0])
	if err != nil {
		fatal(err)
	}
	_, _ = color.New(color.FgGreen).Fprintf(os.Stderr, "✓ Created namespace %q\n", ns.Title)
	fmt.Printf("id = \"%s\"\n", ns.ID)
}

func runKVNamespaceDelete(cmd *cobra.Command, args []string) {
	target := resolveTarget(loadConfig())
	requireAccount(target)

	if err := newClient().DeleteNamespace(context.Background(), target.AccountID, args[0]); err != nil {
		fatal(err)
	}
	_, _ = color.New(color.FgGreen).Fprintf(os.Stderr, "✓ Deleted namespace %s\n", args[0])
}

func runKVNamespaceList(cmd *cobra.Command, args []string) {
	target := resolveTarget(loadConfig())
	requireAccount(target)

	namespaces, err := newClient().ListNamespaces(context.Background(), target.AccountID)
	if err != nil {
		fatal(err)
	}
	for _, ns := range namespaces {
		fmt.Printf("%s  %s\n", ns.ID, ns.Title)
	}
}

func runKVKeyPut(cmd *cobra.Command, args []string) {
	target := resolveTarget(loadConfig())
	requireAccount(target)
	namespace := requireNamespace()

	err := newClient().WriteKey(context.Background(), target.AccountID, namespace, args[0], []byte(args[1]), kvKeyTTL)
	if err != nil {
		fatal(err)
	}
	_, _ = color.New(color.FgGreen).Fprintf(os.Stderr, "✓ Wrote %q\n", args[0])
}

func runKVKeyGet(cmd *cobra.Command, args []string) {
	target := resolveTarget(loadConfig())
	requireAccount(target)
	namespace := requireNamespace()

	value, err := newClient().ReadKey(context.Background(), target.AccountID, namespace, args[0])
	if err != nil {
		fatal(err)
	}
	os.Stdout.Write(value)
}

func runKVKeyDelete(cmd *cobra.Command, args []string) {
	target := resolveTarget(loadConfig())
	requireAccount(target)
	namespace := requireNamespace()

	if err := newClient().DeleteKey(context.Background(), target.AccountID, namespace, args[0]); err != nil {
		fatal(err)
	}
	_, _ = color.New(color.FgGreen).Fprintf(os.Stderr, "✓ Deleted %q\n", args[0])
}

func runKVKeyList(cmd *cobra.Command, args []string) {
	target := resolveTarget(loadConfig())
	requireAccount(target)
	namespace := requireNamespace()

	keys, err := newClient().ListKeys(context.Background(), target.AccountID, namespace, kvKeyPrefix)
	if err != nil {
		fatal(err)
	}
	for _, key := range keys {
		fmt.Println(key.Name)
	}
}

func runKVBulkPut(cmd *cobra.Command, args []string) {
	target := resolveTarget(loadConfig())
	requireAccount(target)
	namespace := requireNamespace()

	pairs, err := kv.ParseBulkFile(args[0])
	if err != nil {
		fatal(err)
	}
	if err := newClient().WriteBulk(context.Background(), target.AccountID, namespace, pairs); err != nil {
		fatal(err)
	}
	_, _ = color.New(color.FgGreen).Fprintf(os.Stderr, "✓ Wrote %d pairs\n", len(pairs))
}

func runKVBulkDelete(cmd *cobra.Command, args []string) {
	target := resolveTarget(loadConfig())
	requireAccount(target)
	namespace := requireNamespace()

	keys, err := kv.ParseBulkDeleteFile(args[0])
	if err != nil {
		fatal(err)
	}
	if err := newClient().DeleteBulk(context.Background(), target.AccountID, namespace, keys); err != nil {
		fatal(err)
	}
	_, _ = color.New(color.FgGreen).Fprintf(os.Stderr, "✓ Deleted %d keys\n", len(keys))
}
