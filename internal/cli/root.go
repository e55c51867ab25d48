// Package cli provides the command-line interface for greetly.
package cli

import (
	"fmt"
	"os"

	"github.com/greetly-cli/greetly/internal/app"
	"github.com/greetly-cli/greetly/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile        string
	initConfigPath string
)

// rootCmd is the only command. Any positional token is a name to greet,
// so no subcommands are registered - cobra would otherwise claim tokens
// like "help" as commands.
var rootCmd = &cobra.Command{
	Use:   "greetly [name]",
	Short: "Print a greeting",
	Long: `Greetly prints a greeting, optionally customized by a single name
argument. Without an argument it greets the configured default name.`,
	Version:       "1.0.0",
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGreet,
}

// Execute runs the root command and returns its error, if any.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is ./greetly.yaml)")
	rootCmd.Flags().StringVar(&initConfigPath, "init-config", "", "write an example config file to the given path and exit")
}

func runGreet(cmd *cobra.Command, posArgs []string) error {
	if initConfigPath != "" {
		if err := config.WriteExample(initConfigPath); err != nil {
			return fmt.Errorf("failed to write example config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote example config to %s\n", initConfigPath)
		return nil
	}

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	}

	greetly, err := app.New()
	if err != nil {
		return err
	}

	// The validator works on the full argument list, program name included
	argv := append([]string{os.Args[0]}, posArgs...)

	return greetly.Run(argv, cmd.OutOrStdout())
}
