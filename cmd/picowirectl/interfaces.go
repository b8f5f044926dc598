package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"picowire"
)

var interfacesPrefer []string

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "List local IPv4 candidates in preference order",
	Long: `Lists every IPv4 address bound to a local interface, ranked the way
the resolver ranks them. The starred entry is the one a resolve with a
missing IP would pick.`,
	Args: cobra.NoArgs,
	RunE: runInterfaces,
}

func init() {
	interfacesCmd.Flags().StringArrayVar(&interfacesPrefer, "prefer", nil, "Glob pattern ranking local IPs (repeatable, most preferred first)")
	rootCmd.AddCommand(interfacesCmd)
}

func runInterfaces(cmd *cobra.Command, args []string) error {
	resolver := picowire.NewResolver(cfg)
	ranked, err := resolver.LocalIPs(interfacesPrefer...)
	if err != nil {
		return err
	}

	for i, ip := range ranked {
		marker := " "
		if i == 0 {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, ip)
	}
	return nil
}
