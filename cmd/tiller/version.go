package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tillerhq/tiller"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tiller",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tiller version %s\n", strings.TrimSpace(tiller.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
