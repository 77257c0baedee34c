package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/keepstack/devsummary/values"
)

// DumpCmd prints the whole parsed values tree as indented JSON, keeping
// the key order of the source file.  Useful for inspecting what the
// subset parser actually produced.
type DumpCmd struct{}

func (c *DumpCmd) Execute(_ []string) error {
	root, ok, err := loadTree()
	if err != nil {
		return err
	}
	if !ok {
		root = values.NewMapping()
	}
	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, string(data))
	return nil
}
