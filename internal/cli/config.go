package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dshills/herald/internal/config"
	"github.com/dshills/herald/internal/redact"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage herald configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(os.Stderr, "Config file already exists at %s\n", path)
			return nil
		}

		if err := config.Save(config.Default()); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Fprintf(os.Stdout, "Config file created at %s\n", path)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long:  "Set updates one field by dotted key, e.g. active_provider, scp.host, s3.bucket. Environment overrides are never written back to the file.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, found, err := config.LoadFile()
		if err != nil {
			return err
		}
		if !found {
			// No config file yet; start from the init scaffold
			cfg = config.Default()
		}

		if err := config.SetField(&cfg, args[0], args[1]); err != nil {
			return err
		}

		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}

		fmt.Fprintf(os.Stdout, "Set %s = %s\n", args[0], args[1])
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration (file plus environment overrides)",
	Long:  "Show prints the configuration the publish command would use, with environment overrides applied and credential values masked.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, found, err := config.Load()
		if err != nil {
			return err
		}
		if !found {
			path, _ := config.Path()
			fmt.Fprintf(cmd.OutOrStdout(), "error: config not found at %s\n", path)
			exitCode = ExitFailure
			return nil
		}

		data, err := json.MarshalIndent(redact.Credentials(cfg), "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configShowCmd)
}
