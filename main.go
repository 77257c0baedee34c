package main

import (
	"os"

	"github.com/keepstack/devsummary/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
