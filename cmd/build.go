package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build your script",
	Long:  `Run the build command configured under [build] in edgeplane.toml.`,
	Run:   runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if cfg.ConfigFilePath == "" {
		printConfigNotFound()
		os.Exit(1)
	}
	if cfg.Build.Command == "" {
		fmt.Println("No build command configured; nothing to do.")
		return
	}

	build := exec.Command("sh", "-c", cfg.Build.Command)
	if cfg.Build.Dir != "" {
		build.Dir = cfg.Build.Dir
	}
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr

	if err := build.Run(); err != nil {
		fatal(fmt.Errorf("build command failed: %w", err))
	}
	_, _ = color.New(color.FgGreen).Fprintln(os.Stderr, "✓ Build succeeded")
}
