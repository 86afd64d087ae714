package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/coleweb/internal/platform"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <user-agent>",
	Short: "Show which platform and download card a User-Agent maps to",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ua := strings.Join(args, " ")
		p := platform.Classify(ua)
		card := string(platform.DownloadCard(p))
		if card == "" {
			card = "none"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "platform: %s\ncard: %s\n", p.Name(), card)
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
