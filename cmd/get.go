package cmd

import (
	"fmt"

	"github.com/keepstack/devsummary/values"
)

// GetCmd prints the raw scalar stored at a dotted path, e.g.
//
//	devsummary get secrets.data.SMTP_URL
//
// An absent path prints nothing, mirroring the summary's skip-silently
// behavior.
type GetCmd struct {
	Args struct {
		Path string `positional-arg-name:"path" description:"dotted path, e.g. postgres.username" required:"yes"`
	} `positional-args:"yes"`
}

func (c *GetCmd) Execute(_ []string) error {
	root, ok, err := loadTree()
	if err != nil || !ok {
		return err
	}
	if value, found := values.Lookup(root, c.Args.Path); found {
		fmt.Fprintln(stdout, value)
	}
	return nil
}
