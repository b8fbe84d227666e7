package cmd

import (
	"fmt"

	"github.com/ooxo-pl/machines-data/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app carries the dependencies shared by every subcommand. It is populated
// once in the root command's PersistentPreRunE, after flags are parsed.
type app struct {
	cfg *config.Config
	log *logrus.Logger
}

// RootCommand creates and returns the root command with all pipeline stages
// registered as subcommands.
func RootCommand() *cobra.Command {
	a := &app{log: logrus.New()}
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "machines-data",
		Short: "Machines and OEM parts catalog data pipeline",
		Long: `Data pipeline for the machines and OEM parts catalog.

Each subcommand is one pipeline stage: download and scrape fetch raw CSV
data, combine merges it into canonical files, import loads them into the
database, and validate reports on the resulting catalog.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config/config.yaml", "Path to the YAML config file")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		a.cfg = cfg
		return nil
	}

	rootCmd.AddCommand(
		downloadCommand(a),
		scrapeCommand(a),
		sampleCommand(a),
		combineCommand(a),
		importCommand(a),
		seedVerifiedCommand(a),
		validateCommand(a),
	)

	return rootCmd
}
