package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/edgeplane/edgeplane/internal/r2"
)

var r2Cmd = &cobra.Command{
	Use:   "r2",
	Short: "Interact with your R2 buckets",
}

var r2BucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Manage R2 buckets",
}

var r2ObjectCmd = &cobra.Command{
	Use:   "object",
	Short: "Read and write bucket objects through the S3-compatible endpoint",
}

var r2ObjectBucket string

func init() {
	rootCmd.AddCommand(r2Cmd)
	r2Cmd.AddCommand(r2BucketCmd, r2ObjectCmd)

	r2BucketCmd.AddCommand(
		&cobra.Command{
			Use:   "create <name>",
			Short: "Create a new bucket",
			Args:  cobra.ExactArgs(1),
			Run:   runR2BucketCreate,
		},
		&cobra.Command{
			Use:   "delete <name>",
			Short: "Delete a bucket (must be empty)",
			Args:  cobra.ExactArgs(1),
			Run:   runR2BucketDelete,
		},
		&cobra.Command{
			Use:   "list",
			Short: "List the buckets on your account",
			Args:  cobra.NoArgs,
			Run:   runR2BucketList,
		},
	)

	list := &cobra.Command{
		Use:   "list [prefix]",
		Short: "List objects in a bucket",
		Args:  cobra.MaximumNArgs(1),
		Run:   runR2ObjectList,
	}
	r2ObjectCmd.AddCommand(
		&cobra.Command{
			Use:   "put <key> <file>",
			Short: "Upload a file as an object",
			Args:  cobra.ExactArgs(2),
			Run:   runR2ObjectPut,
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Write an object's contents to stdout",
			Args:  cobra.ExactArgs(1),
			Run:   runR2ObjectGet,
		},
		&cobra.Command{
			Use:   "delete <key>",
			Short: "Delete an object",
			Args:  cobra.ExactArgs(1),
			Run:   runR2ObjectDelete,
		},
		list,
	)

	r2ObjectCmd.PersistentFlags().StringVar(&r2ObjectBucket, "bucket", "", "The bucket to operate on")
}

func runR2BucketCreate(cmd *cobra.Command, args []string) {
	target := resolveTarget(loadConfig())
	requireAccount(target)

	if err := newClient().CreateBucket(context.Background(), target.AccountID, args[0]); err != nil {
		fatal(err)
	}
	_, _ = color.New(color.FgGreen).Fprintf(os.Stderr, "✓ Created bucket %q\n", args[0])
}

func runR2BucketDelete(cmd *cobra.Command, args []string) {
	target := resolveTarget(loadConfig())
	requireAccount(target)

	if err := newClient().DeleteBucket(context.Background(), target.AccountID, args[0]); err != nil {
		fatal(err)
	}
	_, _ = color.New(color.FgGreen).Fprintf(os.Stderr, "✓ Deleted bucket %q\n", args[0])
}

func runR2BucketList(cmd *cobra.Command, args []string) {
	target := resolveTarget(loadConfig())
	requireAccount(target)

	buckets, err := newClient().ListBuckets(context.Background(), target.AccountID)
	if err != nil {
		fatal(err)
	}
	for _, bucket := range buckets {
		fmt.Println(bucket.Name)
	}
}

func openObjectStore(ctx context.Context) *r2.Store {
	if r2ObjectBucket == "" {
		fatal(fmt.Errorf("--bucket is required"))
	}
	cfg := loadConfig()
	store, err := r2.Open(ctx, r2ObjectBucket, cfg.R2.Endpoint, cfg.R2.Region)
	if err != nil {
		fatal(err)
	}
	return store
}

func runR2ObjectPut(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	store := openObjectStore(ctx)
	defer store.Close()

	file, err := os.Open(args[1])
	if err != nil {
		fatal(err)
	}
	defer file.Close()

	if err := store.Put(ctx, args[0], file); err != nil {
		fatal(err)
	}
	_, _ = color.New(color.FgGreen).Fprintf(os.Stderr, "✓ Uploaded %s\n", args[0])
}

func runR2ObjectGet(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	store := openObjectStore(ctx)
	defer store.Close()

	if err := store.Get(ctx, args[0], os.Stdout); err != nil {
		fatal(err)
	}
}

func runR2ObjectDelete(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	store := openObjectStore(ctx)
	defer store.Close()

	if err := store.Delete(ctx, args[0]); err != nil {
		fatal(err)
	}
	_, _ = color.New(color.FgGreen).Fprintf(os.Stderr, "✓ Deleted %s\n", args[0])
}

func runR2ObjectList(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	store := openObjectStore(ctx)
	defer store.Close()

	prefix := ""
	if len(args) == 1 {
		prefix = args[0]
	}
	objects, err := store.List(ctx, prefix)
	if err != nil {
		fatal(err)
	}
	for _, obj := range objects {
		fmt.Printf("%10d  %s\n", obj.Size, obj.Key)
	}
}
