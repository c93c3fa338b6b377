package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dshills/herald/internal/config"
	"github.com/dshills/herald/internal/log"
	"github.com/dshills/herald/internal/publish"
	"github.com/spf13/cobra"
)

var publishCmd = &cobra.Command{
	Use:   "publish <local_file_path> <artifact_slug>",
	Short: "Publish a local HTML file to the active provider",
	Long:  "Publish uploads one local HTML file so it is reachable under the given slug, using the provider selected by active_provider in the config file.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		cfg, found, err := config.Load()
		if err != nil {
			fmt.Fprintf(out, "\nfailure: %s\n", err)
			exitCode = ExitFailure
			return nil
		}
		if !found {
			path, _ := config.Path()
			fmt.Fprintf(out, "error: config not found at %s\n", path)
			exitCode = ExitFailure
			return nil
		}

		if err := runPublish(out, cfg, args[0], args[1]); err != nil {
			fmt.Fprintf(out, "\nfailure: %s\n", err)
			exitCode = ExitFailure
		}
		return nil
	},
}

// runPublish is the one path from configuration to published page. Every
// error it returns is caught by the caller and printed as the failure line.
func runPublish(out io.Writer, cfg config.Config, localPath, slug string) error {
	// config.Load supplies the default provider; an empty name here means
	// the file declared one and must fail the lookup.
	name := cfg.ActiveProvider
	log.Debug().Str("provider", name).Str("local_path", localPath).Str("slug", slug).Msg("starting publish")

	pub, err := publish.New(name, cfg, out)
	if err != nil {
		return err
	}

	location, err := pub.Publish(context.Background(), localPath, slug)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "success: page published.")
	if base := activeURLBase(cfg, name); base != "" {
		fmt.Fprintf(out, "url: %s\n", publish.PublicURL(base, slug))
	} else {
		fmt.Fprintf(out, "location: %s\n", location)
	}
	return nil
}

// activeURLBase returns public_url_base from the active provider's section,
// or "" when unset.
func activeURLBase(cfg config.Config, name string) string {
	switch name {
	case config.ProviderSCP:
		if cfg.SCP != nil {
			return cfg.SCP.PublicURLBase
		}
	case config.ProviderS3:
		if cfg.S3 != nil {
			return cfg.S3.PublicURLBase
		}
	}
	return ""
}
