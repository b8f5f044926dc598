package main

import (
	"github.com/spf13/cobra"

	"picowire"
)

var (
	cfgPath string
	verbose bool
	cfg     *picowire.Config
)

var rootCmd = &cobra.Command{
	Use:   "picowirectl",
	Short: "Inspect and resolve local network endpoints",
	Long: `picowirectl resolves partially specified endpoints into bindable
"ip:port" strings and inspects the local IPv4 candidates the resolver
chooses between.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = picowire.LoadConfig(cfgPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.ConsoleLevel = "debug"
		}
		return picowire.InitLogging(cfg)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Echo debug detail to the console")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
