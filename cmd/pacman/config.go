package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a game would start with, after --config,
--maze and --difficulty are applied.

With --defaults the embedded default file is printed instead. Save it as
~/.pacman/configs/pacman.yaml or ./configs/pacman.yaml and edit from there.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := writeConfig(os.Stdout, flagDefaults); err != nil {
			exitf("%v", err)
		}
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded defaults")
}

func writeConfig(w io.Writer, defaults bool) error {
	if defaults {
		_, err := w.Write(config.GetDefaultYAML(pacman.GameID))
		return err
	}

	cfg, err := pacman.LoadConfig()
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
