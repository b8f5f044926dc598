package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"picowire"
)

var splitCmd = &cobra.Command{
	Use:   "split <command-line>",
	Short: "Split a shell-style command line into tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	words, err := picowire.SplitCommand(args[0])
	if err != nil {
		return err
	}

	for _, word := range words {
		fmt.Println(word)
	}
	return nil
}
