package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/edgeplane/edgeplane/internal/api"
	"github.com/edgeplane/edgeplane/internal/config"
	"github.com/edgeplane/edgeplane/internal/migrations"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish your script to the edge",
	Long: `Publish the built script to the platform.

Durable object class changes ride along as an adhoc migration:
  --new-class       allow durable objects to be created from a class
  --delete-class    delete all durable objects associated with a class
  --rename-class    rename a class (from,to)
  --transfer-class  move a class's objects from another script (script,from,to)`,
	Example: `  # Publish the configured script
  edgeplane publish

  # Publish with a new durable object class
  edgeplane publish --new-class Counter

  # Rename a class and tag the migration
  edgeplane publish --rename-class Counter,Tally --old-tag v1 --new-tag v2`,
	Run: runPublish,
}

var (
	publishOutput          string
	publishNewClasses      []string
	publishDeleteClasses   []string
	publishRenameClasses   []string
	publishTransferClasses []string
	publishOldTag          string
	publishNewTag          string
)

func init() {
	rootCmd.AddCommand(publishCmd)

	publishCmd.Flags().StringVar(&publishOutput, "output", "", "Output format: json")
	publishCmd.Flags().StringArrayVar(&publishNewClasses, "new-class", nil, "Allow durable objects to be created from a class in your script")
	publishCmd.Flags().StringArrayVar(&publishDeleteClasses, "delete-class", nil, "Delete all durable objects associated with a class in your script")
	publishCmd.Flags().Var(newTupleValue(2, &publishRenameClasses), "rename-class", "Rename a durable object class (from,to)")
	publishCmd.Flags().Var(newTupleValue(3, &publishTransferClasses), "transfer-class", "Transfer durable objects from a class in another script (script,from,to)")
	publishCmd.Flags().StringVar(&publishOldTag, "old-tag", "", "Specify the existing migration tag for the script")
	publishCmd.Flags().StringVar(&publishNewTag, "new-tag", "", "Specify the new migration tag for the script")
}

// adhocFromFlags collects the migration flags into the compiler input. Tag
// flags only count when supplied, so an explicit empty tag stays distinct
// from an absent one.
func adhocFromFlags(cmd *cobra.Command) migrations.AdhocMigration {
	adhoc := migrations.AdhocMigration{
		NewClasses:         publishNewClasses,
		DeletedClasses:     publishDeleteClasses,
		RenamedClasses:     publishRenameClasses,
		TransferredClasses: publishTransferClasses,
	}
	if cmd.Flags().Changed("old-tag") {
		tag := publishOldTag
		adhoc.OldTag = &tag
	}
	if cmd.Flags().Changed("new-tag") {
		tag := publishNewTag
		adhoc.NewTag = &tag
	}
	return adhoc
}

func runPublish(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if cfg.ConfigFilePath == "" {
		printConfigNotFound()
		os.Exit(1)
	}
	target := resolveTarget(cfg)
	requireAccount(target)

	script, err := os.ReadFile(scriptPath(cfg))
	if err != nil {
		fatal(fmt.Errorf("read built script: %w (run edgeplane build first)", err))
	}

	meta := api.ScriptMetadata{
		Migrations: api.MigrationUploadFrom(adhocFromFlags(cmd).Compile()),
	}

	ctx := context.Background()
	client := newClient()
	result, err := client.DeployScript(ctx, target.AccountID, target.ScriptName, script, meta)
	if err != nil {
		fatal(err)
	}

	var deployedTo string
	if target.Route != "" && target.ZoneID != "" {
		if _, err := client.CreateRoute(ctx, target.ZoneID, target.Route, target.ScriptName); err != nil {
			fatal(fmt.Errorf("attach route %s: %w", target.Route, err))
		}
		deployedTo = target.Route
	}
	if target.WorkersDev {
		if err := client.PublishToWorkersDev(ctx, target.AccountID, target.ScriptName, true); err != nil {
			fatal(err)
		}
		subdomain, err := client.Subdomain(ctx, target.AccountID)
		if err == nil && subdomain != "" {
			deployedTo = fmt.Sprintf("https://%s.%s.workers.dev", target.ScriptName, subdomain)
		}
	}

	if publishOutput == "json" {
		out := struct {
			*api.DeployResult
			URL string `json:"url,omitempty"`
		}{result, deployedTo}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			fatal(err)
		}
		fmt.Println(string(data))
		return
	}

	_, _ = color.New(color.FgGreen).Fprintf(os.Stderr, "✓ Published %s\n", target.ScriptName)
	if deployedTo != "" {
		fmt.Printf("  %s\n", deployedTo)
	}
}

// scriptPath returns the built script to upload.
func scriptPath(cfg *config.Config) string {
	if cfg.Build.Output != "" {
		return cfg.Build.Output
	}
	return "dist/worker.js"
}
