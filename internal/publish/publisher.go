package publish

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/dshills/herald/internal/config"
)

// Publisher is the provider abstraction interface. Publish uploads the file
// at localPath so it is addressable under slug and returns the resulting
// location (a remote file path or an s3:// URI).
type Publisher interface {
	Publish(ctx context.Context, localPath, slug string) (string, error)
	Name() string
}

// providerTable is the closed dispatch set. Supporting a new provider means
// adding a constructor here and a section type in internal/config.
var providerTable = map[string]func(cfg config.Config, out io.Writer) (Publisher, error){
	config.ProviderSCP: newSCP,
	config.ProviderS3:  newS3,
}

// New creates the provider named name. Progress lines are written to out.
// Configuration problems (unknown name, missing section, missing required
// fields) are reported before any side effect.
func New(name string, cfg config.Config, out io.Writer) (Publisher, error) {
	build, ok := providerTable[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider '%s'", name)
	}
	return build(cfg, out)
}

// Names returns the supported provider names, sorted.
func Names() []string {
	names := make([]string, 0, len(providerTable))
	for name := range providerTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
