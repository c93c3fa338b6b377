package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dshills/herald/internal/config"
	"github.com/dshills/herald/internal/publish"
	"github.com/dshills/herald/internal/sshexec"
	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Provider management",
}

type providerInfo struct {
	Name   string
	Fields []string
}

var knownProviders = []providerInfo{
	{
		Name: "scp",
		Fields: []string{
			"host              (required)  ssh target, e.g. user@web.example.com",
			"destination_path  (required)  base directory for published pages",
			"public_url_base   (optional)  base for the printed url",
		},
	},
	{
		Name: "s3",
		Fields: []string{
			"bucket            (required)  target bucket",
			"region            (optional)  default us-east-1",
			"acl               (optional)  default public-read",
			"endpoint          (optional)  S3-compatible endpoint URL",
			"path_style        (optional)  path-style addressing (true/false)",
			"access_key        (optional)  static credentials, with secret_key",
			"secret_key        (optional)",
			"public_url_base   (optional)  base for the printed url",
		},
	},
}

var providersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported providers and their config fields",
	Run: func(cmd *cobra.Command, args []string) {
		for _, info := range knownProviders {
			fmt.Fprintf(os.Stdout, "%s:\n", info.Name)
			for _, f := range info.Fields {
				fmt.Fprintf(os.Stdout, "  %s\n", f)
			}
			fmt.Fprintln(os.Stdout)
		}
	},
}

var providersDoctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Validate the active provider configuration and dependencies",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, found, err := config.Load()
		if err != nil {
			return err
		}
		if !found {
			path, _ := config.Path()
			fmt.Fprintf(os.Stderr, "FAIL: config not found at %s\n", path)
			exitCode = ExitFailure
			return nil
		}

		name := cfg.ActiveProvider
		fmt.Fprintf(os.Stdout, "Checking %s...\n", name)

		if err := checkProvider(name, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
			exitCode = ExitFailure
			return nil
		}

		fmt.Fprintf(os.Stdout, "OK: %s is configured and ready\n", name)
		return nil
	},
}

// checkProvider runs the same construction path publishing uses, then the
// provider's liveness check: a no-op remote command for scp, credential
// resolution for s3. Nothing it does leaves state behind.
func checkProvider(name string, cfg config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := publish.New(name, cfg, io.Discard); err != nil {
		return err
	}

	switch name {
	case config.ProviderSCP:
		if _, err := sshexec.New(cfg.SCP.Host).Run(ctx, "true"); err != nil {
			return fmt.Errorf("%s is not reachable: %w", cfg.SCP.Host, err)
		}
	case config.ProviderS3:
		return publish.CheckS3(ctx, cfg.S3)
	}
	return nil
}

func init() {
	providersCmd.AddCommand(providersListCmd)
	providersCmd.AddCommand(providersDoctorCmd)
}
