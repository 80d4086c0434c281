package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jet-defender/internal/config"
)

var flagConfigDifficulty string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration jet play would use as YAML, after the search
path and the difficulty preset are applied. The output is a valid config
file.

Examples:
  jet config > ~/.jet/configs/jet.yaml
  jet config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig(flagConfigDifficulty)
	if err != nil {
		return err
	}
	data, err := config.Encode(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
