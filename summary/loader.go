// Package summary loads the dev values file and prints the handful of
// fields a developer needs to reach the local environment: ingress URL,
// database and dashboard credentials and selected secrets.
package summary

import (
	"context"
	"fmt"

	"github.com/viant/afs"

	"github.com/keepstack/devsummary/values"
)

// DefaultLocation is where the dev overlay keeps its values file,
// relative to the repository root.
const DefaultLocation = "deploy/values/dev.yaml"

// Load reads and parses the values file at URL. An absent resource is a
// normal condition reported as ok == false with a nil error; any other
// storage failure (permissions, transport) is returned as an error.
func Load(ctx context.Context, URL string) (*values.Mapping, bool, error) {
	fs := afs.New()
	ok, err := fs.Exists(ctx, URL)
	if err != nil {
		return nil, false, fmt.Errorf("check values file %q: %w", URL, err)
	}
	if !ok {
		return nil, false, nil
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, false, fmt.Errorf("read values file %q: %w", URL, err)
	}
	return values.ParseBytes(data), true, nil
}
