package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/coleweb/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "coleweb",
	Short: "Website and documentation server for CoLE",
	Long: `coleweb serves the CoLE (Command Line Experience) website: the landing
page with OS-aware download suggestions, the About page and the
documentation viewer. It can also export the whole site as static files.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
