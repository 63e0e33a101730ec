package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dragon-ascent/internal/config"
)

var flagDumpVariant string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the game configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a session would use, after the search order
(--config, ~/.dragon/configs/dragon.yaml, ./configs/dragon.yaml, built-in
defaults), the variant and the difficulty preset are applied.

Examples:
  dragon config dump > ~/.dragon/configs/dragon.yaml
  dragon config dump --variant classic --difficulty hard`,
	RunE: runConfigDump,
}

func init() {
	addGameFlags(configDumpCmd)
	configDumpCmd.Flags().StringVar(&flagDumpVariant, "variant", "", "Apply a variant: rich or classic")
	configCmd.AddCommand(configDumpCmd)
}

func runConfigDump(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadDragon(flagConfig)
	if err != nil {
		return err
	}
	switch flagDumpVariant {
	case "":
	case config.VariantRich, config.VariantClassic:
		config.ApplyVariant(&cfg, flagDumpVariant)
	default:
		return fmt.Errorf("unknown variant %q (want rich or classic)", flagDumpVariant)
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
		config.ApplyDragonPreset(&cfg, preset)
	}

	data, err := config.MarshalDragon(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
