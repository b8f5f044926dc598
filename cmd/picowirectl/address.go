package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"picowire"
)

var addressPrefer []string

var addressCmd = &cobra.Command{
	Use:   "address [endpoint]",
	Short: "Resolve an endpoint into a bindable ip:port",
	Long: `Resolve fills in whatever the endpoint leaves out: a missing port is
drawn from the dynamic pool, a missing IP comes from ranked local
interface discovery. With no endpoint at all, both are filled in.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAddress,
}

func init() {
	addressCmd.Flags().StringArrayVar(&addressPrefer, "prefer", nil, "Glob pattern ranking local IPs (repeatable, most preferred first)")
	rootCmd.AddCommand(addressCmd)
}

func runAddress(cmd *cobra.Command, args []string) error {
	input := ""
	if len(args) > 0 {
		input = args[0]
	}

	resolver := picowire.NewResolver(cfg)
	resolved, err := resolver.Resolve(input, addressPrefer...)
	if err != nil {
		return err
	}

	fmt.Println(resolved)
	return nil
}
