package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newRootCmd() *cobra.Command {
	var configPath string
	rootCmd := &cobra.Command{
		Use:   "groupwm",
		Short: "A tiling window manager for X11 with nine groups",
		Long: "groupwm is a tiling window manager for X11. It shows a status bar " +
			"listing the groups that have been visited and still hold windows.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			if err := setConfig(c); err != nil {
				return err
			}
			run(configPath)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(),
		"Path to the YAML config file")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "check-config",
		Short: "Validate the config file and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(configPath, cmd.Flags().Changed("config")); err != nil {
				return err
			}
			switch {
			case configPath == "":
				fmt.Fprintln(cmd.OutOrStdout(), "no config file, using the built-in defaults")
			case !configExists(configPath):
				fmt.Fprintf(cmd.OutOrStdout(), "%s not found, using the built-in defaults\n", configPath)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", configPath)
			}
			return nil
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "print-config",
		Short: "Print the effective configuration as YAML",
		Long: "print-config prints the built-in defaults merged with the config " +
			"file. Its output is itself a valid config file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(c); err != nil {
				return err
			}
			return enc.Close()
		},
	})
	return rootCmd
}

// setConfig makes c the configuration before the X connection is up.
// applyConfig takes over once it is.
func setConfig(c *Config) error {
	p, err := c.palette()
	if err != nil {
		return err
	}
	m, err := parseModifier(c.ModKey)
	if err != nil {
		return err
	}
	conf, colors, modMask = c, p, m
	return nil
}

func configExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
