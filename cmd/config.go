package cmd

import (
	"fmt"
	"os"

	"github.com/grovetools/core/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCmd prints the resolved grove.yml/grove.toml for the current
// directory, after FindConfigFile's ancestor search and SetDefaults.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Display the resolved project configuration",
		Long: `Shows the grove.yml/grove.toml found by walking up from the current
directory, after defaults have been applied. Useful for debugging agent
launch commands and scheduler interval overrides.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}

			path, err := config.FindConfigFile(cwd)
			if err != nil {
				fmt.Println("# no grove.yml/grove.toml found; showing defaults")
			} else {
				fmt.Printf("# Source: %s\n", path)
			}

			cfg, err := config.LoadFrom(cwd)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			fmt.Println(string(data))
			return nil
		},
	}
	return cmd
}
