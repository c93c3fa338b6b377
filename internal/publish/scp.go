package publish

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/dshills/herald/internal/config"
	"github.com/dshills/herald/internal/log"
	"github.com/dshills/herald/internal/sshexec"
)

// SCP publishes by copying the file onto a remote host with ssh/scp. The
// published page lands at <destination_path>/<slug>/index.html, world
// readable.
type SCP struct {
	cfg    *config.SCPConfig
	client *sshexec.Client
	out    io.Writer
}

func newSCP(cfg config.Config, out io.Writer) (Publisher, error) {
	if cfg.SCP == nil {
		return nil, &configError{err: errors.New("configuration for provider 'scp' is missing in json.")}
	}
	if err := cfg.SCP.Validate(); err != nil {
		return nil, &configError{err: err}
	}
	if err := sshexec.Available(); err != nil {
		return nil, &dependencyError{err: err}
	}
	return &SCP{cfg: cfg.SCP, client: sshexec.New(cfg.SCP.Host), out: out}, nil
}

func (p *SCP) Name() string { return config.ProviderSCP }

// Publish runs the three-step remote sequence: create the slug directory,
// copy the file, make it read-only. No rollback on a mid-sequence failure.
func (p *SCP) Publish(ctx context.Context, localPath, slug string) (string, error) {
	remoteDir := p.cfg.DestinationPath + "/" + slug
	remoteFile := remoteDir + "/index.html"

	fmt.Fprintf(p.out, "--> [scp] connecting to %s...\n", p.cfg.Host)

	// mkdir -p so republishing an existing slug is not an error
	if _, err := p.client.Run(ctx, "mkdir", "-p", remoteDir); err != nil {
		return "", &transportError{err: fmt.Errorf("creating %s: %w", remoteDir, err)}
	}

	fmt.Fprintf(p.out, "--> [scp] uploading %s...\n", filepath.Base(localPath))
	if err := p.client.Copy(ctx, localPath, remoteFile); err != nil {
		return "", &transportError{err: fmt.Errorf("uploading %s: %w", filepath.Base(localPath), err)}
	}

	if _, err := p.client.Run(ctx, "chmod", "444", remoteFile); err != nil {
		return "", &transportError{err: fmt.Errorf("setting permissions on %s: %w", remoteFile, err)}
	}

	log.Debug().Str("host", p.cfg.Host).Str("remote_file", remoteFile).Msg("scp publish complete")
	return remoteFile, nil
}
