// Package cmd implements all sub-commands that make up the devsummary
// command-line interface.  Each file in this directory registers a single
// sub-command (summary, get, keys, dump).  The plumbing that is shared
// between commands, such as locating and parsing the values file, is
// located in shared.go.
package cmd
