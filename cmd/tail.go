package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/edgeplane/edgeplane/internal/tail"
)

var tailCmd = &cobra.Command{
	Use:   "tail [script-name]",
	Short: "View a stream of logs from a published script",
	Example: `  # Tail the configured script, pretty-printed
  edgeplane tail --format pretty

  # Tail another script until the first event
  edgeplane tail my-other-worker --once`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTail,
}

var (
	tailFormat       string
	tailOnce         bool
	tailSamplingRate float64
	tailStatus       []string
	tailMethod       []string
	tailSearch       string
)

func init() {
	rootCmd.AddCommand(tailCmd)

	tailCmd.Flags().StringVarP(&tailFormat, "format", "f", "json", "Output format for log messages (json or pretty)")
	tailCmd.Flags().BoolVar(&tailOnce, "once", false, "Stop the tail after receiving the first log (useful for testing)")
	tailCmd.Flags().Float64Var(&tailSamplingRate, "sampling-rate", 1, "Adds a sampling rate (0.01 for 1%)")
	tailCmd.Flags().StringArrayVar(&tailStatus, "status", nil, "Filter by invocation status (ok, error, canceled)")
	tailCmd.Flags().StringArrayVar(&tailMethod, "method", nil, "Filter by HTTP method")
	tailCmd.Flags().StringVar(&tailSearch, "search", "", "Filter by a text match in console.log messages")
}

func runTail(cmd *cobra.Command, args []string) {
	format, err := tail.ParseFormat(tailFormat)
	if err != nil {
		fatal(err)
	}
	if tailSamplingRate <= 0 || tailSamplingRate > 1 {
		fatal(fmt.Errorf("sampling rate must be in (0, 1], got %g", tailSamplingRate))
	}

	target := resolveTarget(loadConfig())
	requireAccount(target)

	scriptName := target.ScriptName
	if len(args) == 1 {
		scriptName = args[0]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := newClient()
	session, err := client.CreateTail(ctx, target.AccountID, scriptName)
	if err != nil {
		fatal(err)
	}
	defer func() {
		// Best effort; the session expires on its own.
		_ = client.DeleteTail(context.Background(), target.AccountID, scriptName, session.ID)
	}()

	fmt.Fprintf(os.Stderr, "Connected to %s, waiting for logs...\n", scriptName)

	opts := tail.Options{
		Format:       format,
		Once:         tailOnce,
		SamplingRate: tailSamplingRate,
		Status:       tailStatus,
		Methods:      tailMethod,
		Search:       tailSearch,
	}
	if err := tail.Run(ctx, session.URL, opts, os.Stdout); err != nil {
		fatal(err)
	}
}
