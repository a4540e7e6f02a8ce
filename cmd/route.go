package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "List or delete script routes",
}

func init() {
	rootCmd.AddCommand(routeCmd)

	routeCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List the routes on the configured zone",
			Args:  cobra.NoArgs,
			Run:   runRouteList,
		},
		&cobra.Command{
			Use:   "delete <route-id>",
			Short: "Delete a route by ID",
			Args:  cobra.ExactArgs(1),
			Run:   runRouteDelete,
		},
	)
}

func requireZone() string {
	target := resolveTarget(loadConfig())
	if target.ZoneID == "" {
		fatal(fmt.Errorf("no zone_id configured; routes live on a zone"))
	}
	return target.ZoneID
}

func runRouteList(cmd *cobra.Command, args []string) {
	routes, err := newClient().ListRoutes(context.Background(), requireZone())
	if err != nil {
		fatal(err)
	}
	for _, route := range routes {
		script := route.Script
		if script == "" {
			script = "(none)"
		}
		fmt.Printf("%s  %s -> %s\n", route.ID, route.Pattern, script)
	}
}

func runRouteDelete(cmd *cobra.Command, args []string) {
	if err := newClient().DeleteRoute(context.Background(), requireZone(), args[0]); err != nil {
		fatal(err)
	}
	_, _ = color.New(color.FgGreen).Fprintf(os.Stderr, "✓ Deleted route %s\n", args[0])
}
