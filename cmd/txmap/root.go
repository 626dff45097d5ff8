package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "txmap",
		Short: "Translate between transcript and genomic coordinates",
		Long: `txmap converts positions between a transcript's local coordinate space
and the genomic coordinate space of its chromosome, driven by per-transcript
CIGAR-style alignment strings.

Transcripts are loaded from a tab-separated file (name, chromosome, start,
alignment string, and an optional forward/reverse orientation) or from a
DuckDB store produced by 'txmap convert'.`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cobra.OnInitialize(initConfig)

	cmd.AddCommand(newTranslateCmd())
	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig reads ~/.txmap.yaml and TXMAP_* environment overrides.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".txmap")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("TXMAP")
	viper.AutomaticEnv()

	// Missing config file is fine; flags and defaults cover everything.
	_ = viper.ReadInConfig()
}
