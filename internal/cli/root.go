// Package cli implements the rerun command line tool: manifest validation
// and app-testing ledger inspection.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the rerun CLI.
//
// Flag values may come from (highest precedence first) the command line,
// RERUN_* environment variables, or a config file (--config, or .rerun.yaml
// in the working directory).
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "rerun",
		Short: "rerun - widget identity and state tooling",
		Long:  "Tooling for reactive app manifests and app-testing ledgers.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(v, cmd, cfgFile); err != nil {
				return err
			}
			opts.Verbose = v.GetBool("verbose")
			opts.Format = v.GetString("format")

			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .rerun.yaml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	cmd.PersistentFlags().String("format", "text", "output format (json|text)")

	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewLedgerCommand(opts))

	return cmd
}

// loadConfig wires flags, environment, and the optional config file into
// one viper instance. A missing default config file is not an error; an
// explicitly named one must exist.
func loadConfig(v *viper.Viper, cmd *cobra.Command, cfgFile string) error {
	if err := v.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose")); err != nil {
		return err
	}
	if err := v.BindPFlag("format", cmd.PersistentFlags().Lookup("format")); err != nil {
		return err
	}

	v.SetEnvPrefix("RERUN")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
		return nil
	}

	v.SetConfigName(".rerun")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
