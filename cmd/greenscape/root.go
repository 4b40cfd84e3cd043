package main

import (
	"github.com/spf13/cobra"

	"greenscape/internal/version"
)

var (
	// configDir is the CLI --config-dir flag value
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "greenscape",
	Short: "GreenScape Lawn Care website",
	Long: `greenscape serves the GreenScape Lawn Care marketing site: the
server-rendered pages, the Datastar-driven contact form and the static
assets, configured through layered TOML files and APP_* environment
variables.`,
	Version: version.Info(),
}

func init() {
	rootCmd.SetVersionTemplate("greenscape version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "config",
		"Directory holding default.toml and its overlays")
}
