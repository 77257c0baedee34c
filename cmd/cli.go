package cmd

import (
	"log"
	"strings"

	"github.com/jessevdk/go-flags"
)

// Run is the entry point for the CLI.  The function is intentionally
// separated from the main package to keep the command usable from tests
// as well.
func Run(args []string) {
	// Make the values file location discoverable by sub-commands via the
	// global singleton before full flags parsing runs.
	setValuesLocation(extractValuesLocation(args))

	args = defaultToSummary(args)

	opts := &Options{}
	opts.Init(args[0])

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		// flags already prints a user-friendly message – just set exit code.
		log.Fatalf("%v", err)
	}
}

// defaultToSummary keeps the historical flagless contract: invoking the
// tool with no command at all (optionally just a -f/--file flag) prints
// the dev summary.
func defaultToSummary(args []string) []string {
	if len(args) == 0 {
		return []string{"summary"}
	}
	first := args[0]
	if first == "-h" || first == "--help" || !strings.HasPrefix(first, "-") {
		return args
	}
	return append([]string{"summary"}, args...)
}

// extractValuesLocation searches the raw argument list for the -f/--file
// option before the full flags parsing is performed so that sub-commands
// can load the values file early from a deterministic location.
func extractValuesLocation(args []string) string {
	for i, a := range args {
		switch a {
		case "-f", "--file":
			if i+1 < len(args) {
				return args[i+1]
			}
		default:
			if strings.HasPrefix(a, "--file=") {
				return strings.TrimPrefix(a, "--file=")
			}
			// go-flags also accepts the glued short form, -fpath.yaml.
			if strings.HasPrefix(a, "-f") && !strings.HasPrefix(a, "--") {
				return strings.TrimPrefix(a, "-f")
			}
		}
	}
	return ""
}
