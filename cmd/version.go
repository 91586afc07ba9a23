package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudvault/cli/internal/output"
)

// Version is the CLI version, injected at build time:
//
//	go build -ldflags "-X github.com/cloudvault/cli/cmd.Version=1.2.3"
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the CLI version",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagJSON {
			output.JSON(map[string]string{"version": Version})
			return nil
		}
		fmt.Println("cloudvault", Version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
