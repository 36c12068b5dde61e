package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dotcommander/querylint/internal/config"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a .querylintrc.json with the current settings",
	Long: `The init command writes the effective configuration (defaults, any existing
config file, environment and flags) to .querylintrc.json in the working directory.
An existing file is only replaced with --force.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		path, err := writeConfig(cfg, ".", initForce)
		if err != nil {
			return err
		}
		if !cfg.Quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		}
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	RootCmd.AddCommand(initCmd)
}

// writeConfig saves cfg as the JSON config file in dir
func writeConfig(cfg *config.Config, dir string, force bool) (string, error) {
	path := filepath.Join(dir, config.ConfigFiles[0])
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.SaveConfig(cfg, path); err != nil {
		return "", err
	}
	return path, nil
}
