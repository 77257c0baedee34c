package cmd

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/keepstack/devsummary/summary"
	"github.com/keepstack/devsummary/values"
)

// stdout is the destination for all command output.  Tests swap it for a
// buffer; everything else writes to the real standard output.
var stdout io.Writer = os.Stdout

var (
	valuesLocation string

	treeOnce sync.Once
	treeInst *values.Mapping
	treeOK   bool
	treeErr  error
)

// setValuesLocation remembers the CLI-level -f/--file parameter so that
// the tree singleton can be created lazily by whichever sub-command is
// executed first.
func setValuesLocation(p string) { valuesLocation = p }

// loadTree parses the values file only once and reuses the tree across
// sub-commands within the same CLI invocation.  ok is false when the
// file does not exist, which callers treat as an empty report.
func loadTree() (*values.Mapping, bool, error) {
	treeOnce.Do(func() {
		location := valuesLocation
		if location == "" {
			location = summary.DefaultLocation
		}
		treeInst, treeOK, treeErr = summary.Load(context.Background(), location)
	})
	return treeInst, treeOK, treeErr
}
