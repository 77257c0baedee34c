package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	File string `short:"f" long:"file" description:"values file location (default deploy/values/dev.yaml)"`

	Summary *SummaryCmd `command:"summary" description:"Print ingress, database and secret details for the dev environment"`
	Get     *GetCmd     `command:"get"     description:"Print a single value addressed by a dotted path"`
	Keys    *KeysCmd    `command:"keys"    description:"List the keys of the mapping at a dotted path"`
	Dump    *DumpCmd    `command:"dump"    description:"Print the parsed values tree as JSON"`
}

// Init instantiates the sub-command referenced by the first positional
// argument so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "summary":
		o.Summary = &SummaryCmd{}
	case "get":
		o.Get = &GetCmd{}
	case "keys":
		o.Keys = &KeysCmd{}
	case "dump":
		o.Dump = &DumpCmd{}
	}
}
