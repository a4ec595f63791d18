// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "platefront",
	Short: "Platefront - website wizard for restaurants",
	Long: `Platefront is the backend for a guided website builder aimed at
restaurants. Owners walk through a short wizard, upload a logo, and get
a themed site: the logo's dominant colors become the site palette and
drive a live preview while they work.

Finished drafts are handed to a static-site generation backend.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
