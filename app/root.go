// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var (
	configPath string // Path to the configuration directory holding main.toml

	rootCmd = &cobra.Command{
		Use:   "barcode-maker",
		Short: "Barcode Maker renders barcodes and QR codes",
		Long: `Barcode Maker renders barcodes and QR codes from text input.
It serves a generator page with previews and downloads, a cacheable
image endpoint and a command line batch renderer.`,
		Args:          cobra.OnlyValidArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./etc/", "directory of main.toml")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
