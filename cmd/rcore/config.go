package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration rcore run would use, after merging the
config file with the built in defaults.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	_, err = os.Stdout.Write(data)
	return err
}
