package cmd

import (
	"fmt"

	"github.com/keepstack/devsummary/values"
)

// KeysCmd lists the keys of the mapping at a dotted path, one per line,
// in the order they appear in the values file.  Without a path it lists
// the top-level keys.
type KeysCmd struct {
	Args struct {
		Path string `positional-arg-name:"path" description:"dotted path of a mapping (root when omitted)"`
	} `positional-args:"yes"`
}

func (c *KeysCmd) Execute(_ []string) error {
	root, ok, err := loadTree()
	if err != nil || !ok {
		return err
	}
	mapping := root
	if c.Args.Path != "" {
		mapping = values.MappingAt(root, c.Args.Path)
	}
	for _, key := range mapping.Keys() {
		fmt.Fprintln(stdout, key)
	}
	return nil
}
