// Package main provides the shallow CLI with small training demos.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

var mainCmd = &cobra.Command{
	Use:   "shallow",
	Short: "classical supervised models on dense matrices",
}

func versionCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "show version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("shallow %s\n", version)
		},
	}
}

func main() {
	mainCmd.AddCommand(versionCMD())
	mainCmd.AddCommand(xorCMD())
	mainCmd.AddCommand(logisticCMD())

	if mainCmd.Execute() != nil {
		os.Exit(1)
	}
}
