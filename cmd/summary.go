package cmd

import (
	"github.com/keepstack/devsummary/summary"
)

// SummaryCmd prints the dev environment summary.  This is also the
// default command when the tool is invoked without arguments.
type SummaryCmd struct{}

func (c *SummaryCmd) Execute(_ []string) error {
	root, ok, err := loadTree()
	if err != nil {
		return err
	}
	if !ok {
		// Nothing deployed yet – nothing to report.
		return nil
	}
	summary.Report(root, stdout)
	return nil
}
